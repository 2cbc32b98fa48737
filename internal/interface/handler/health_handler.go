package handler

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// DefaultReadyTimeout はレディネスチェック全体のタイムアウトです
const DefaultReadyTimeout = 2 * time.Second

// HealthChecker はヘルスチェックを実行するインターフェースです
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthCheckerFunc は関数をHealthCheckerとして扱うためのアダプターです
type HealthCheckerFunc func(ctx context.Context) error

// Health はfを呼び出します
func (f HealthCheckerFunc) Health(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler はヘルスチェック関連のHTTPハンドラーです
type HealthHandler struct {
	checkers map[string]HealthChecker
	timeout  time.Duration
}

// NewHealthHandler は新しいHealthHandlerを作成します
func NewHealthHandler(timeout time.Duration) *HealthHandler {
	if timeout <= 0 {
		timeout = DefaultReadyTimeout
	}
	return &HealthHandler{
		checkers: make(map[string]HealthChecker),
		timeout:  timeout,
	}
}

// RegisterChecker はヘルスチェッカーを登録します
// 起動時にのみ呼び出してください
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// Names は登録済みのチェッカー名を昇順で返します
func (h *HealthHandler) Names() []string {
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HealthResponse はヘルスチェックレスポンスを定義します
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse はレディネスチェックレスポンスを定義します
type ReadyResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services,omitempty"`
}

// ServiceStatus はサービスのステータスを定義します
type ServiceStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}

// Check はライブネスチェックを実行します
// GET /health
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}

// Ready はレディネスチェックを実行します
// 全チェッカーを並行に実行し、1つでも失敗すれば503を返します
// GET /ready
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	services := make(map[string]ServiceStatus, len(h.checkers))
	allHealthy := true

	var mu sync.Mutex
	var wg sync.WaitGroup

	for name, checker := range h.checkers {
		wg.Add(1)
		go func(name string, checker HealthChecker) {
			defer wg.Done()

			start := time.Now()
			err := checker.Health(ctx)
			status := ServiceStatus{
				Status:    "healthy",
				LatencyMs: time.Since(start).Milliseconds(),
			}
			if err != nil {
				status.Status = "unhealthy"
				status.Message = err.Error()
			}

			mu.Lock()
			defer mu.Unlock()
			services[name] = status
			if err != nil {
				allHealthy = false
			}
		}(name, checker)
	}

	wg.Wait()

	status := "ready"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, ReadyResponse{
		Status:   status,
		Services: services,
	})
}
