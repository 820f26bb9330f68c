package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, getLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, getLogLevel("warning"))
	assert.Equal(t, slog.LevelError, getLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, getLogLevel(""))
	assert.Equal(t, slog.LevelInfo, getLogLevel("verbose"))
}

func TestFromContext(t *testing.T) {
	assert.Same(t, GetDefault(), FromContext(context.Background()))

	var out bytes.Buffer
	l := NewWithWriter(&out, "info").WithRequestID("req-42")
	ctx := IntoContext(context.Background(), l)

	FromContext(ctx).LogBookingReceived(ctx, "Wedding", "2025-06-01", "asha@example.com")

	assert.Contains(t, out.String(), "req-42")
	assert.Contains(t, out.String(), "Booking Received")
	assert.Contains(t, out.String(), "Wedding")
}

func TestLevelFiltersDebug(t *testing.T) {
	var out bytes.Buffer
	l := NewWithWriter(&out, "warn")

	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
}
