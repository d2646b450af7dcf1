// Package logging builds the process logger from configuration.
package logging

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"ebiten-circles/config"
)

// New returns a zerolog logger writing to out at the configured level.
// PrettyLog switches to zerolog's console writer.
func New(cfg config.Config, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), eris.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	if cfg.PrettyLog {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// ForSystem returns a sub logger tagged with the system name
func ForSystem(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("system", name).Logger()
}
