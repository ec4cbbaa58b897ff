package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lambda-feedback/greeter/config"
	"github.com/lambda-feedback/greeter/internal/shell"
	"github.com/lambda-feedback/greeter/util/conf"
	"github.com/lambda-feedback/greeter/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	appName  = "greeter"
	appUsage = `A small http server greeting its callers with documents,
static assets and json payloads.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			// general flags
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "env-file",
				Usage:   "dotenv file exported into the environment on startup.",
				Value:   ".env",
				EnvVars: []string{"ENV_FILE"},
			},
			// asset flags
			&cli.StringFlag{
				Name:     "views-dir",
				Usage:    "directory holding the index document.",
				Value:    "views",
				Category: "assets",
				EnvVars:  []string{"VIEWS_DIR"},
			},
			&cli.StringFlag{
				Name:     "public-dir",
				Usage:    "directory served below /public.",
				Value:    "public",
				Category: "assets",
				EnvVars:  []string{"PUBLIC_DIR"},
			},
		},
		Before: before,
		After: func(ctx *cli.Context) error {
			// Before may have failed ahead of creating the logger
			if log, err := logging.LoggerFromContext(ctx.Context); err == nil {
				log.Sync()
			}

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

func before(ctx *cli.Context) error {
	// export the env file first, so config and request-time lookups see it
	envFile := ctx.String("env-file")
	exported, err := conf.LoadEnvFile(envFile, nil)
	if err != nil {
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}

	// parse config using defaults, env and flags
	cfg, err := conf.Parse[config.Config](conf.ParseOptions{
		Cli:      ctx,
		Defaults: config.DefaultConfig,
	})
	if err != nil {
		return err
	}

	// create the logger
	log, err := logging.New(logging.Options{
		App:    appName,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return err
	}

	if len(exported) > 0 {
		log.Debug("loaded env file",
			zap.String("file", envFile),
			zap.Strings("exported", exported),
		)
	}

	// inject logger into cli context
	ctx.Context = logging.ContextWithLogger(ctx.Context, log)

	// inject the config into the cli context
	ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

	return nil
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

// Execute runs the cli with the process arguments and returns the
// exit code.
func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	code := shell.ExitCode(err)
	if code != 0 && !isExitError(err) {
		fmt.Fprintf(os.Stderr, "exit error: %s\n", err.Error())
	}

	return code
}

func isExitError(err error) bool {
	var exitErr *shell.ExitError
	return errors.As(err, &exitErr)
}
