// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server opens its listener inside Run, so bind errors are returned
// immediately and Addr reports the real port when ":0" was requested. Run
// blocks until the context is canceled, SIGINT or SIGTERM arrives, or
// Shutdown is called, then drains in-flight requests within the configured
// shutdown timeout.
//
// Construction uses functional options (WithAddr, WithWriteTimeout,
// WithLogger and so on) or NewFromConfig with a Config loaded from HTTP_*
// environment variables:
//
//	var cfg httpserver.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	return srv.Run(ctx, router)
//
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY" or
// 503 "NOT_READY") probes.
package httpserver
