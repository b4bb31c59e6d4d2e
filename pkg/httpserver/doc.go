// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is cancelled, SIGINT or SIGTERM arrives, Shutdown is
// called, or the listener fails. Failures are wrapped in ErrStart and
// ErrShutdown so callers can match them with errors.Is.
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
