package config

import "github.com/lambda-feedback/greeter/util/conf"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// EnvFile is the dotenv file exported into the process env on startup
	EnvFile string `conf:"env_file"`

	// Assets configures where documents and static files are read from
	Assets AssetsConfig `conf:",squash"`
}

type AssetsConfig struct {
	// ViewsDir holds the documents served by the index route
	ViewsDir string `conf:"views_dir"`

	// PublicDir is served below /public
	PublicDir string `conf:"public_dir"`
}

var DefaultConfig = conf.DefaultConfig{
	"log_level":  "info",
	"log_format": "production",
	"env_file":   ".env",
	"views_dir":  "views",
	"public_dir": "public",
}
