// Package logger configures diagnostics logging for telegram-notifier.
//
// Normal runs stay quiet: only the success and failure lines of the CLI
// contract reach the terminal. With --verbose, debug-level events
// (credential source, file sizes, request timing) are written to stderr
// as console output.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr. verbose lowers the
// level to debug; otherwise only warnings and errors are emitted.
func New(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).With().Timestamp().Logger().Level(level)
}

// RedactToken shortens a bot token for log output so the secret never
// appears in full.
func RedactToken(token string) string {
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-2:]
}
