package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat_WritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json"}, &buf)

	log.Info("time resolved", "zone", "Asia/Tokyo")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "time resolved", record["msg"])
	assert.Equal(t, "Asia/Tokyo", record["zone"])
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "text"}, &buf)

	log.Info("dropped")
	log.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel_UnknownFallsBackToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestWithContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(New(Config{Level: "debug", Format: "json"}, &buf))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := ContextWithRequestID(context.Background(), "req-123")
	Info(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "req-123", record["request_id"])
}

func TestSetup_FileOutput_ReturnsCloser(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "app.log")
	closeFn, err := Setup(Config{Level: "info", Format: "json", Output: path})

	require.NoError(t, err)
	slog.Info("written")
	assert.NoError(t, closeFn())
}
