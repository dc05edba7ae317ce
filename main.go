package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := newLogger(zerolog.ErrorLevel, os.Stderr)
		logger.Error().Msg(eris.ToString(err, false))
		os.Exit(1)
	}
}
