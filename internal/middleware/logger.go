package middleware

import (
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
)

// Logger writes one line per request, "<METHOD> <path> - <ip>",
// before handing the request on.
func Logger(log *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fields := make([]zap.Field, 0, 1)
			if id, ok := RequestIDFromContext(r.Context()); ok {
				fields = append(fields, zap.String("request_id", id))
			}

			log.Info(fmt.Sprintf("%s %s - %s", r.Method, r.URL.Path, ClientIP(r)), fields...)

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the caller address of r without the port.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
