// Package logging builds the zerolog logger used by the loader and the CLI.
// The algorithmic packages do not log.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/salesman/config"
)

// Logger is the logger type passed around the application.
type Logger = zerolog.Logger

// New returns a logger writing to w (os.Stderr when nil). Pretty selects the
// human-readable console writer; an unknown level falls back to info.
func New(cfg config.Logging, w io.Writer) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if w == nil {
		w = os.Stderr
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything, for tests and library callers.
func Nop() Logger {
	return zerolog.Nop()
}
