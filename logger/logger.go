// Package logger builds the application's structured loggers.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger at the given level. Unknown level strings
// fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger { return zerolog.Nop() }
