package handler

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("handler",
		// provide handlers
		fx.Provide(NewIndexHandler),
		fx.Provide(NewMessageHandler),
		fx.Provide(NewNowHandler),
		fx.Provide(NewEchoHandler),
		fx.Provide(NewNameHandler),
		// provide routes
		fx.Provide(NewIndexRoute),
		fx.Provide(NewMessageRoute),
		fx.Provide(NewNowRoute),
		fx.Provide(NewEchoRoute),
		fx.Provide(NewNameRoute),
		fx.Provide(NewNameFormRoute),
		fx.Provide(NewHealthRoute),
	)
}
