package middleware

import (
	"context"
	"net/http"
	"time"
)

// DateLayout renders times the way JavaScript's Date.prototype.toString does.
const DateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// Timestamp stamps the request with the current time, formatted with
// DateLayout. Read it back with TimeFromContext.
func Timestamp(now func() time.Time) Middleware {
	if now == nil {
		now = time.Now
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), timeKey, now().Format(DateLayout))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TimeFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(timeKey).(string)
	return t, ok
}
