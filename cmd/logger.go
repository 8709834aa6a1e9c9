package cmd

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// setupLogger creates a console logger on stderr at the given level
func setupLogger(logLevel string) zerolog.Logger {
	return newLogger(os.Stderr, logLevel)
}

func newLogger(w io.Writer, logLevel string) zerolog.Logger {
	// Parse log level
	level := zerolog.WarnLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: w != os.Stderr}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// sdkLogger adapts a zerolog.Logger to spotify.Logger
type sdkLogger struct {
	log zerolog.Logger
}

func (l sdkLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}
