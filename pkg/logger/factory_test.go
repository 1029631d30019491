package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/outreach/pkg/logger"
)

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Format: logger.FormatJSON}, requestID)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-3")
		log.InfoContext(ctx, "campaign started", slog.Int("recipients", 3))

		rec := decode(t, &buf)
		assert.Equal(t, "campaign started", rec["msg"])
		assert.Equal(t, "INFO", rec["level"])
		assert.InDelta(t, 3, rec["recipients"], 0)
		assert.Equal(t, "req-3", rec["request_id"])
	})

	t.Run("level filter", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Level: slog.LevelWarn})
		log.Info("ignored")
		assert.Zero(t, buf.Len())

		log.Warn("email failed")
		assert.Contains(t, buf.String(), "email failed")
	})

	t.Run("console", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Format: logger.FormatConsole})
		log.Info("email sent", slog.String("email", "a@example.com"))

		out := buf.String()
		assert.Contains(t, out, "email sent")
		assert.Contains(t, out, "a@example.com")
		assert.NotContains(t, out, `"msg"`)
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
