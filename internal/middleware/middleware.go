// Package middleware holds the request processing steps that wrap
// every route, plus route-level steps such as Timestamp.
package middleware

import "net/http"

// Middleware wraps a handler with an additional processing step.
type Middleware = func(http.Handler) http.Handler

// Order of the global middleware, outermost first.
const (
	OrderRecover = iota * 10
	OrderSentry
	OrderRequestID
	OrderLogger
	OrderStatic
	OrderBody
)

type contextKey int

const (
	requestIDKey contextKey = iota
	bodyKey
	timeKey
)
