// Package httpserver wraps net/http with graceful shutdown, env-backed
// configuration, and a health check handler.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil { ... }
package httpserver
