package health

import "context"

// Pinger checks that a component is loaded and usable.
type Pinger interface {
	Ping(ctx context.Context) error
}
