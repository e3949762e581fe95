package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/numcheck/pkg/httpserver"
	"github.com/dmitrymomot/numcheck/pkg/logger"
	"github.com/dmitrymomot/numcheck/pkg/numformat"
	"github.com/dmitrymomot/numcheck/pkg/requestid"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"numcheck"`
	LogLevel  string `env:"LOG_LEVEL"`  // overrides the environment preset when set
	LogFormat string `env:"LOG_FORMAT"` // json or text; overrides the environment preset when set

	Format numformat.Config
	HTTP   httpserver.Config
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	switch f := logger.Format(cfg.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be %q or %q", cfg.LogFormat, logger.FormatJSON, logger.FormatText)
	}
	return logger.New(opts...), nil
}
