package internal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/anvilworks/anvil/pkg/logger"
)

// requestIDKey is the context key for the per-request dispatch id.
type requestIDKey struct{}

// RequestIDExtractor returns a logger extractor that adds the dispatch
// request id to every log entry carrying the request context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}

// Handler returns the HTTP front controller. Every path is served by the
// dispatcher; the request target is taken from the "q" query value per
// the target-resolution policy. A liveness probe is mounted at /healthz.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/*", http.HandlerFunc(a.serveFront))
	return r
}

func (a *App) serveFront(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
	w.Header().Set("X-Request-ID", reqID)

	target := RequestTarget("", r.URL.Query().Get("q"))

	if err := a.Dispatch(target, w); err != nil {
		if errors.Is(err, ErrUnknownController) {
			a.logger.WarnContext(ctx, "controller not found",
				slog.String("target", target),
				slog.Any("error", err))
			http.Error(w, "404 page not found", http.StatusNotFound)
			return
		}
		a.logger.ErrorContext(ctx, "dispatch failed",
			slog.String("target", target),
			slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	a.logger.InfoContext(ctx, "dispatched",
		slog.String("target", target),
		slog.String("root", RootPath(r.RequestURI, target)))
}
