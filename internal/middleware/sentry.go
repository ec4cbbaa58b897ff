package middleware

import (
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
)

const sentryTimeout = 2 * time.Second

// Sentry attaches a hub to each request and reports panics. The panic
// is re-raised so that Recover still writes the response.
func Sentry() Middleware {
	handler := sentryhttp.New(sentryhttp.Options{
		Repanic: true,
		Timeout: sentryTimeout,
	})

	return handler.Handle
}
