// Package httpserver wraps net/http with graceful shutdown, env-driven
// timeouts, lifecycle hooks and health-check handlers.
//
// Run binds the listener, invokes start hooks, serves until the context is
// cancelled or SIGINT/SIGTERM arrives, then shuts down within the configured
// deadline:
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    // errors.Is(err, httpserver.ErrStart)
//	}
package httpserver
