package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveReady(t *testing.T, h *HealthHandler) (int, ReadyResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ready", nil), rec)

	require.NoError(t, h.Ready(c))

	var body ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthHandler_Ready_AllHealthy(t *testing.T) {
	h := NewHealthHandler(time.Second)
	h.RegisterChecker("tzdb", HealthCheckerFunc(func(ctx context.Context) error { return nil }))

	code, body := serveReady(t, h)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ready", body.Status)
	assert.Equal(t, "healthy", body.Services["tzdb"].Status)
}

func TestHealthHandler_Ready_OneUnhealthy(t *testing.T) {
	h := NewHealthHandler(time.Second)
	h.RegisterChecker("tzdb", HealthCheckerFunc(func(ctx context.Context) error { return nil }))
	h.RegisterChecker("worker", HealthCheckerFunc(func(ctx context.Context) error {
		return errors.New("time zone database changed on disk")
	}))

	code, body := serveReady(t, h)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "not_ready", body.Status)
	assert.Equal(t, "unhealthy", body.Services["worker"].Status)
	assert.Equal(t, "time zone database changed on disk", body.Services["worker"].Message)
	assert.Equal(t, "healthy", body.Services["tzdb"].Status)
}

func TestHealthHandler_Ready_TimesOut(t *testing.T) {
	h := NewHealthHandler(20 * time.Millisecond)
	h.RegisterChecker("slow", HealthCheckerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))

	code, body := serveReady(t, h)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", body.Services["slow"].Status)
}

func TestHealthHandler_Names(t *testing.T) {
	h := NewHealthHandler(0)
	h.RegisterChecker("worker", HealthCheckerFunc(func(ctx context.Context) error { return nil }))
	h.RegisterChecker("tzdb", HealthCheckerFunc(func(ctx context.Context) error { return nil }))

	assert.Equal(t, []string{"tzdb", "worker"}, h.Names())
	assert.Equal(t, DefaultReadyTimeout, h.timeout)
}

func TestQueryParam(t *testing.T) {
	params := map[string][]string{"tz": {""}, "future": {"1M", "2M"}}

	assert.Nil(t, queryParam(params, "past"))
	require.NotNil(t, queryParam(params, "tz"))
	assert.Equal(t, "", *queryParam(params, "tz"))
	assert.Equal(t, "1M", *queryParam(params, "future"))
}
