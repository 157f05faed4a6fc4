package app

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	clock  func() time.Time
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock replaces time.Now, used when validating due dates and by the
// store when it defaults a missing due date
func WithClock(clock func() time.Time) Option {
	return func(cfg *appConfig) {
		if clock != nil {
			cfg.clock = clock
		}
	}
}
