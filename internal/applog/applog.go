// Package applog configures the process-wide zerolog logger. The CLI
// sets it up at startup; the web server writes its operational lines
// (startup, per-request debug) through it.
// It never logs diagnostics themselves -- those are data, not log lines.
package applog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures zerolog for the process and installs it as the
// package-level logger. verbose raises the level to Debug.
func Setup(verbose bool) zerolog.Logger {
	return SetupWithWriter(verbose, nil)
}

// SetupWithWriter configures zerolog to write to the stderr console
// writer and, when additionalWriter is non-nil, to that writer as well.
func SetupWithWriter(verbose bool, additionalWriter io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}

	var writer io.Writer = consoleWriter
	if additionalWriter != nil {
		writer = zerolog.MultiLevelWriter(consoleWriter, additionalWriter)
	}

	logger := zerolog.New(writer).With().Timestamp().Logger().Level(level)
	log.Logger = logger
	return logger
}

// ForRequest returns a logger with a request_id field, for correlating
// a single analyze call's log lines in the web server.
func ForRequest(requestID string) zerolog.Logger {
	return log.Logger.With().Str("request_id", requestID).Logger()
}
