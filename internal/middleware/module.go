package middleware

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/greeter/config"
	"github.com/lambda-feedback/greeter/internal/server"
)

// PublicPrefix is the url prefix static files are served under.
const PublicPrefix = "/public"

func Module() fx.Option {
	return fx.Module("middleware",
		fx.Provide(NewRecover),
		fx.Provide(NewSentry),
		fx.Provide(NewRequestID),
		fx.Provide(NewLogger),
		fx.Provide(NewStatic),
		fx.Provide(NewURLEncoded),
	)
}

func NewRecover(log *zap.Logger) server.HttpMiddlewareResult {
	return server.AsHttpMiddleware("recover", OrderRecover, Recover(log))
}

func NewSentry() server.HttpMiddlewareResult {
	return server.AsHttpMiddleware("sentry", OrderSentry, Sentry())
}

func NewRequestID() server.HttpMiddlewareResult {
	return server.AsHttpMiddleware("request_id", OrderRequestID, RequestID)
}

func NewLogger(log *zap.Logger) server.HttpMiddlewareResult {
	return server.AsHttpMiddleware("logger", OrderLogger, Logger(log.Named("access")))
}

func NewStatic(cfg config.Config) server.HttpMiddlewareResult {
	return server.AsHttpMiddleware("static", OrderStatic, Static(PublicPrefix, cfg.Assets.PublicDir))
}

func NewURLEncoded() server.HttpMiddlewareResult {
	return server.AsHttpMiddleware("urlencoded", OrderBody, URLEncoded)
}
