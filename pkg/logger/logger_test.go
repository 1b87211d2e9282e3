package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvilworks/anvil/pkg/logger"
)

type ctxKey struct{}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	t.Run("injects extracted attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		extractor := func(ctx context.Context) (slog.Attr, bool) {
			if id, ok := ctx.Value(ctxKey{}).(string); ok {
				return slog.String("request_id", id), true
			}
			return slog.Attr{}, false
		}

		h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), extractor)
		log := slog.New(h)

		ctx := context.WithValue(context.Background(), ctxKey{}, "abc-123")
		log.InfoContext(ctx, "handled")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "abc-123", entry["request_id"])
		assert.Equal(t, "handled", entry["msg"])
	})

	t.Run("skips attribute when extractor declines", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		extractor := func(ctx context.Context) (slog.Attr, bool) {
			return slog.Attr{}, false
		}

		h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), extractor)
		slog.New(h).Info("handled")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		_, present := entry["request_id"]
		assert.False(t, present)
	})

	t.Run("nil extractors are filtered", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), nil)
		assert.NotPanics(t, func() {
			slog.New(h).Info("handled")
		})
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	assert.NotPanics(t, func() {
		log.Info("discarded")
		log.Error("also discarded")
	})
}

func TestNewWithSentryFallsBackWithoutDSN(t *testing.T) {
	t.Parallel()

	log := logger.NewWithSentry(logger.SentryConfig{})
	assert.NotNil(t, log)
}
