package logger

import (
	"log/slog"
	"os"
)

// SetupPrettySlog returns a text slog logger for local development.
// Debug level, source omitted, time in the default format.
func SetupPrettySlog() *slog.Logger {
	return slog.New(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}),
	)
}
