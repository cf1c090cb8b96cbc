// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (missing file is fine), then
// environment variables are parsed into any struct annotated with `env` tags.
//
// Usage:
//
//	type DatabaseConfig struct {
//	    ConnectionString string `env:"DATABASE_URL,required"`
//	    MaxOpenConns     int32  `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//	}
//
//	var cfg DatabaseConfig
//	config.MustLoad(&cfg)
//
// Errors can be compared with errors.Is against ErrParsingConfig and
// ErrNilPointer.
package config
