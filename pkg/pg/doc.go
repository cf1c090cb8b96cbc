// Package pg provides PostgreSQL bootstrap helpers built on pgx/v5: a
// Config populated from environment variables, Connect with startup retries,
// goose-based Migrate, a Healthcheck closure, and error classification
// helpers (IsNotFoundError, IsDuplicateKeyError).
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil { ... }
package pg
