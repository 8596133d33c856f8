package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns the process logger. Debug mode switches to a human readable
// console writer.
func Setup(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	if debug {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			Level(level).With().Caller().Logger()
	}

	return logger
}
