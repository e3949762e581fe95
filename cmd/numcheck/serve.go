package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/numcheck/modules/numcheck"
	"github.com/dmitrymomot/numcheck/pkg/httpserver"
	"github.com/dmitrymomot/numcheck/pkg/logger"
	"github.com/dmitrymomot/numcheck/pkg/numformat"
	"github.com/dmitrymomot/numcheck/pkg/requestid"
)

// defaultFormatName is the catalog entry built from NUMFORMAT_* settings.
const defaultFormatName = "default"

func newServeCmd(cfg appConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			catalog, err := loadCatalog(cmd.Context(), cmd)
			if err != nil {
				log.Error("load format catalog", logger.Error(err))
				return err
			}
			if _, ok := catalog.Lookup(defaultFormatName); !ok {
				v, err := numformat.NewFromConfig(cfg.Format)
				if err != nil {
					return err
				}
				catalog.Add(defaultFormatName, v)
			}

			httpCfg := cfg.HTTP
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				httpCfg.Addr = addr
			}

			srv := httpserver.NewFromConfig(httpCfg,
				httpserver.WithLogger(log),
				httpserver.WithStartHook(func(addr string, log *slog.Logger) {
					log.Info("server started", slog.String("addr", addr), logger.Count(catalog.Len()))
				}),
				httpserver.WithStopHook(func(log *slog.Logger) {
					log.Info("server stopped")
				}),
			)
			return srv.Run(cmd.Context(), newHTTPHandler(catalog, log))
		},
	}
	cmd.Flags().String("addr", "", "listen address; overrides HTTP_ADDR")
	return cmd
}

func newHTTPHandler(catalog *numformat.Catalog, log *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.Recoverer)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if catalog.Len() == 0 {
			return errors.New("format catalog is empty")
		}
		return nil
	}))
	r.Mount("/api", numcheck.Router(numcheck.RouterOptions{
		Catalog: catalog,
		Logger:  log,
	}))
	return r
}
