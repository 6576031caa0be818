package config

import (
	"time"

	"github.com/spf13/viper"

	"base-util/pkg/dateutil"
	"base-util/pkg/httputil"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Logger   LoggerConfig
	Date     DateConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// UpstreamConfig describes the service the relay endpoint forwards to.
// An empty URL disables the relay.
type UpstreamConfig struct {
	URL          string
	Timeout      time.Duration
	MaxBodyBytes int64
}

type LoggerConfig struct {
	Level  string
	Format string
}

type DateConfig struct {
	Pattern string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("UPSTREAM_URL", "")
	v.SetDefault("UPSTREAM_TIMEOUT", httputil.DefaultTimeout.String())
	v.SetDefault("UPSTREAM_MAX_BODY_BYTES", 10<<20)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("DATE_PATTERN", dateutil.DefaultPattern)

	// Env
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("UPSTREAM_TIMEOUT"))
	if err != nil || timeout <= 0 {
		timeout = httputil.DefaultTimeout
	}

	pattern := v.GetString("DATE_PATTERN")
	if _, err := dateutil.ToLayout(pattern); err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			URL:          v.GetString("UPSTREAM_URL"),
			Timeout:      timeout,
			MaxBodyBytes: v.GetInt64("UPSTREAM_MAX_BODY_BYTES"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Date: DateConfig{
			Pattern: pattern,
		},
	}

	return cfg, nil
}
