package app

import (
	"github.com/lambda-feedback/greeter/config"
	"github.com/lambda-feedback/greeter/handler"
	"github.com/lambda-feedback/greeter/internal/middleware"
	"github.com/lambda-feedback/greeter/internal/shell"
	"github.com/lambda-feedback/greeter/util/conf"
	"github.com/lambda-feedback/greeter/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	return shell.New(log, Module(config)), nil
}

// Module provides everything shared by the standalone server and
// the lambda handler: config, routes and middleware.
func Module(config config.Config) fx.Option {
	return fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide routes
		handler.Module(),
		// provide middleware
		middleware.Module(),
		// greet on startup
		fx.Invoke(func(log *zap.Logger) {
			log.Info("Hello World")
		}),
	)
}
