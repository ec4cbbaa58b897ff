package lambda

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/greeter/internal/server"
	"github.com/lambda-feedback/greeter/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"lambda",
		// provide lambda config
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("lambda"),
		// provide router
		fx.Provide(server.NewRouter),
		// provide handler
		fx.Provide(NewLifecycleHandler),
		// invoke handler
		fx.Invoke(func(*LambdaHandler) {}),
	)
}
