package clientip

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/trekcheck/trekcheck/pkg/logger"
)

// Middleware stores the client IP of each request in its context.
// See FromRequest for the meaning of trusted.
func Middleware(trusted ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := FromRequest(r, trusted...)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), ip)))
		})
	}
}

// LoggerExtractor adds the client IP under the key "client_ip".
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		ip := FromContext(ctx)
		if ip == "" {
			return slog.Attr{}, false
		}
		return slog.String("client_ip", ip), true
	}
}
