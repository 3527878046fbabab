package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger. Level falls back to info when the
// configured value does not parse.
func New(service, level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(lvl).With().
		Timestamp().
		Str("service", service).
		Logger()
}
