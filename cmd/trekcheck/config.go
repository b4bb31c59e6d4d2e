package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/trekcheck/trekcheck/pkg/clientip"
	"github.com/trekcheck/trekcheck/pkg/config"
	"github.com/trekcheck/trekcheck/pkg/httpserver"
	"github.com/trekcheck/trekcheck/pkg/logger"
	"github.com/trekcheck/trekcheck/pkg/ratelimiter"
	"github.com/trekcheck/trekcheck/pkg/requestid"
)

var errInvalidConfig = errors.New("invalid configuration")

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"trekcheck"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`

	DefaultLang  string `env:"TREKCHECK_DEFAULT_LANG" envDefault:"nl"`
	LicenseTable string `env:"TREKCHECK_LICENSE_TABLE"`

	HTTP                httpserver.Config
	TrustedProxyHeaders []string `env:"HTTP_TRUSTED_PROXY_HEADERS"`

	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimit        ratelimiter.Config
}

// loadConfig reads the process environment (and .env) when opts is empty.
func loadConfig(opts ...config.Option) (appConfig, error) {
	var cfg appConfig
	load := func() error { return config.Load(&cfg) }
	if len(opts) > 0 {
		load = func() error { return config.Parse(&cfg, opts...) }
	}
	if err := load(); err != nil {
		return appConfig{}, err
	}
	switch logger.Format(cfg.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return appConfig{}, fmt.Errorf("%w: LOG_FORMAT %q", errInvalidConfig, cfg.LogFormat)
	}
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return appConfig{}, errors.Join(errInvalidConfig, err)
	}
	return cfg, nil
}

// newLogger builds the process logger writing to w. Levels and formats were
// checked by loadConfig.
func (c appConfig) newLogger(w io.Writer) *slog.Logger {
	level, _ := logger.ParseLevel(c.LogLevel)
	opts := []logger.Option{
		logger.WithEnvironment(c.Env, c.Name),
		logger.WithLevel(level),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
		logger.WithAttr(slog.String("version", version)),
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(c.LogFormat)))
	}
	return logger.New(opts...)
}
