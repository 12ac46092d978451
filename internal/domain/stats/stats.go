package stats

import "sync/atomic"

// Counter is the process-wide search counter. The zero value is ready to use.
type Counter struct {
	n atomic.Int64
}

// Inc increments the counter and returns the new value.
func (c *Counter) Inc() int64 { return c.n.Add(1) }

// Load returns the current value.
func (c *Counter) Load() int64 { return c.n.Load() }

// Snapshot is a point-in-time view of server statistics.
type Snapshot struct {
	TotalDocs         int
	TotalSearches     int64
	Categories        []string
	AvailableExamples []string
}
