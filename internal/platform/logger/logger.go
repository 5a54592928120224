package logger

import (
	"log/slog"
	"os"
)

// New returns the application logger. Services receive it as *slog.Logger so
// tests can swap in slog.New(slog.DiscardHandler).
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
