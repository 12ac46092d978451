package chi

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/transport/api"
)

// maxTrackedClients bounds the limiter table; it is reset when exceeded.
const maxTrackedClients = 10_000

// RateLimitMiddleware applies a token bucket per client IP.
// rps <= 0 disables limiting (pass-through).
func RateLimitMiddleware(rps float64, burst int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rps <= 0 {
			return next
		}
		if burst < 1 {
			burst = 1
		}

		var (
			mu       sync.Mutex
			limiters = make(map[string]*rate.Limiter)
		)
		limiterFor := func(client string) *rate.Limiter {
			mu.Lock()
			defer mu.Unlock()
			l, ok := limiters[client]
			if !ok {
				if len(limiters) >= maxTrackedClients {
					limiters = make(map[string]*rate.Limiter)
				}
				l = rate.NewLimiter(rate.Limit(rps), burst)
				limiters[client] = l
			}
			return l
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			if !limiterFor(clientIP(r)).Allow() {
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, api.ErrorCodeRateLimited, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
