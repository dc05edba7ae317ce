package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"ebiten-calendar/systems"
)

// newLogger writes coloured console output to console and a plain copy to
// the in-game message log shown by the inspector.
func newLogger(level zerolog.Level, console io.Writer) zerolog.Logger {
	out := zerolog.MultiLevelWriter(
		zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen},
		zerolog.ConsoleWriter{Out: systems.GetMessageLog(), TimeFormat: time.Kitchen, NoColor: true},
	)
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
