package server

type HttpConfig struct {
	Host string `conf:"http_host"`
	Port int    `conf:"http_port"`
	H2c  bool   `conf:"http_h2c"`
}
