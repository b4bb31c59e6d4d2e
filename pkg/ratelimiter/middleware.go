package ratelimiter

import (
	"net/http"
	"strconv"

	"github.com/trekcheck/trekcheck/pkg/clientip"
)

// KeyFunc extracts a rate limit key from the request. An empty key bypasses
// the limiter.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by the IP stored by clientip.Middleware, falling
// back to the connection address.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.FromRequest(r)
}

// Middleware rejects requests whose bucket is empty by calling deny, after
// setting X-RateLimit-* and Retry-After headers. A nil deny writes a plain
// 429 response.
func Middleware(l *Limiter, key KeyFunc, deny http.Handler) func(http.Handler) http.Handler {
	if deny == nil {
		deny = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res := l.Allow(k)
			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed {
				secs := int(res.RetryAfter(l.now()).Seconds() + 0.999)
				h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
				deny.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
