package observability

import (
	"log/slog"
	"os"
	"strings"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/lmittmann/tint"
)

// NewLogger creates the process logger and sets it as the slog default.
// format "pretty" gives a coloured console handler for local runs; "text" and
// "json" are handled by the shared logger.
func NewLogger(level, format string) *slog.Logger {
	if !strings.EqualFold(format, "pretty") {
		return sharedobs.NewLogger(level, format)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      parseLevel(level),
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
