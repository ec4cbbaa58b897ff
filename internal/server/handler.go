package server

import (
	"net/http"
	"sort"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// HttpHandler binds a handler to a http.ServeMux pattern,
// e.g. "GET /{word}/echo".
type HttpHandler struct {
	Pattern string
	Handler http.Handler
}

type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

func AsHttpHandler(
	pattern string,
	handler http.Handler,
) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Pattern: pattern,
			Handler: handler,
		},
	}
}

// HttpMiddleware wraps every request served by the mux. Middleware
// with a lower Order runs first.
type HttpMiddleware struct {
	Name  string
	Order int
	Wrap  func(http.Handler) http.Handler
}

type HttpMiddlewareResult struct {
	fx.Out

	Middleware *HttpMiddleware `group:"middleware"`
}

func AsHttpMiddleware(
	name string,
	order int,
	wrap func(http.Handler) http.Handler,
) HttpMiddlewareResult {
	return HttpMiddlewareResult{
		Middleware: &HttpMiddleware{
			Name:  name,
			Order: order,
			Wrap:  wrap,
		},
	}
}

type RouterParams struct {
	fx.In

	Handlers   []*HttpHandler    `group:"handlers"`
	Middleware []*HttpMiddleware `group:"middleware"`
	Logger     *zap.Logger
}

// NewRouter registers all handlers on a fresh mux and wraps it
// with the middleware chain. It backs both the standalone server
// and the lambda handler.
func NewRouter(params RouterParams) http.Handler {
	mux := http.NewServeMux()

	for _, handler := range params.Handlers {
		params.Logger.Debug("registering route", zap.String("pattern", handler.Pattern))
		mux.Handle(handler.Pattern, handler.Handler)
	}

	return Chain(mux, params.Middleware...)
}

// Chain wraps h so that middleware runs in ascending Order,
// ties broken by registration order.
func Chain(h http.Handler, middleware ...*HttpMiddleware) http.Handler {
	sorted := make([]*HttpMiddleware, len(middleware))
	copy(sorted, middleware)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	// wrap innermost first
	for i := len(sorted) - 1; i >= 0; i-- {
		h = sorted[i].Wrap(h)
	}

	return h
}
