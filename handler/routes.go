package handler

import (
	"net/http"

	"github.com/lambda-feedback/greeter/internal/middleware"
	"github.com/lambda-feedback/greeter/internal/server"
)

func NewIndexRoute(handler *IndexHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("GET /{$}", handler)
}

func NewMessageRoute(handler *MessageHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("GET /json", handler)
}

func NewNowRoute(handler *NowHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("GET /now", middleware.Timestamp(nil)(handler))
}

func NewEchoRoute(handler *EchoHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("GET /{word}/echo", handler)
}

func NewNameRoute(handler *NameHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("GET /name", handler)
}

func NewNameFormRoute(handler *NameHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("POST /name", handler)
}

func NewHealthRoute() server.HttpHandlerResult {
	return server.AsHttpHandler("GET /health", http.HandlerFunc(HealthHandler))
}
