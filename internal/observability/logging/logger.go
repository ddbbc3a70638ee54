// Package logging builds the application's slog loggers with a shared
// configuration: JSON output by default, level from LOG_LEVEL, text
// format via LOG_FORMAT=text for local development.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"docdigest/internal/handler/http/requestid"
)

// New creates a structured logger writing to w and installs it as the
// slog default. The API writes to stdout; the CLI writes to stderr so
// stdout stays reserved for report output.
func New(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFromEnv()}

	var handler slog.Handler
	if os.Getenv("LOG_FORMAT") == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func levelFromEnv() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID returns a logger carrying the request ID from the
// context, or the logger unchanged when the context has none.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}
