// Package logger exposes the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init installs a JSON slog handler on stdout. Call once at startup, before
// anything logs.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
