package config

import "time"

var DefaultSettings = Settings{
	DefaultPort:       8080,
	HandleTimeout:     time.Second * 10,
	IdleTimeout:       time.Second * 60,
	LogFormat:         "json",
	MetricsPort:       0, // disabled
	ReadHeaderTimeout: time.Second * 10,
}

// Settings configures the dispatch server process.
type Settings struct {
	DefaultPort       int           `env:"default_port"`
	HandleTimeout     time.Duration `env:"handle_timeout"`
	IdleTimeout       time.Duration `env:"idle_timeout"`
	LogFormat         string        `env:"log_format"`
	LogPretty         bool          `env:"log_pretty"`
	MetricsPort       int           `env:"metrics_port"`
	ReadHeaderTimeout time.Duration `env:"read_header_timeout"`
}
