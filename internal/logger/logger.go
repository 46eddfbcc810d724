// Package logger configures the application's structured logging.
//
// It uses zerolog: human-friendly console output in development, JSON to
// stderr everywhere else. The level comes from POIGW_LOG_LEVEL.
package logger

import (
	"os"

	"github.com/rs/zerolog"

	"poi-gateway/internal/config"
)

// New builds the application logger for the given environment name.
func New(environment string) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if environment == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "poi-gateway").
		Logger()
}
