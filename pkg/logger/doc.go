// Package logger provides a factory for configured log/slog loggers.
//
// Defaults are production-safe (JSON handler, info level); options switch
// format, level, output, and static attributes. WithDevelopment and
// WithProduction apply sensible presets plus service/env attributes.
//
//	log := logger.New(logger.WithEnvironment(cfg.Environment, "lemonbridge"))
//	logger.SetAsDefault(log)
package logger
