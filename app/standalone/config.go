package standalone

import (
	"github.com/lambda-feedback/greeter/internal/server"
	"github.com/lambda-feedback/greeter/util/conf"
)

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`
}

var DefaultConfig = conf.DefaultConfig{
	"http_host": "localhost",
	"http_port": 3000,
	"http_h2c":  false,
}

// CliMap maps the serve command flags onto config keys.
var CliMap = map[string]string{
	"host": "http_host",
	"port": "http_port",
	"h2c":  "http_h2c",
}
