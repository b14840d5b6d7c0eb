// Package logging configures colored structured logging with tint.
//
// Logs always go to stderr: stdout belongs to the interactive terminal
// surface and must stay clean.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tint handler on the default slog logger at the given
// level.
func Setup(level slog.Level) {
	SetupWithWriter(os.Stderr, level)
}

// SetupWithWriter is Setup with an explicit destination, for tests.
func SetupWithWriter(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}
