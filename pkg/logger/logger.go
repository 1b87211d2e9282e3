// Package logger provides structured logging for anvil applications.
//
// It extends log/slog with per-call context extraction (request IDs and
// other request-scoped values) and optional Sentry error reporting. All
// constructors return a plain *slog.Logger, so application code never
// depends on this package directly.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON-formatted logger writing to stdout, decorated with
// the given context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(NewLogHandlerDecorator(h, extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Used as the application default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
