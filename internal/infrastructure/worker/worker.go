package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Job は定期実行ジョブを定義します
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// JobStatus はジョブの直近の実行結果です
type JobStatus struct {
	Runs    int
	LastRun time.Time
	LastErr error
}

// Manager はバックグラウンドワーカーを管理します
type Manager struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	status map[string]JobStatus
}

// NewManager は新しいWorker Managerを作成します
func NewManager() *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		ctx:    ctx,
		cancel: cancel,
		status: make(map[string]JobStatus),
	}
}

// Register は定期実行ジョブを登録します
// Start の前にのみ呼び出してください
func (m *Manager) Register(job Job) {
	m.jobs = append(m.jobs, job)
}

// Start は全ジョブのワーカーを開始します
func (m *Manager) Start() {
	for _, job := range m.jobs {
		m.wg.Add(1)
		go m.runJob(job)
	}
	slog.Info("worker manager started", "jobs", len(m.jobs))
}

// runJob は単一ジョブのワーカーループを実行します
func (m *Manager) runJob(job Job) {
	defer m.wg.Done()

	slog.Info("worker started", "job", job.Name, "interval", job.Interval)

	// 最初の実行を即座に行う
	m.execute(job)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			slog.Info("worker stopping", "job", job.Name)
			return
		case <-ticker.C:
			m.execute(job)
		}
	}
}

func (m *Manager) execute(job Job) {
	err := job.Fn(m.ctx)
	if errors.Is(err, context.Canceled) {
		return
	}
	if err != nil {
		slog.Error("worker job failed", "job", job.Name, "error", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.status[job.Name]
	st.Runs++
	st.LastRun = time.Now()
	st.LastErr = err
	m.status[job.Name] = st
}

// Status はジョブの直近の実行結果を返します
func (m *Manager) Status(name string) (JobStatus, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.status[name]
	return st, ok
}

// Health は直近の実行で失敗したジョブがあればエラーを返します (handler.HealthChecker)
func (m *Manager) Health(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.status))
	for name := range m.status {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		if err := m.status[name].LastErr; err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Shutdown はすべてのワーカーを安全に停止します
func (m *Manager) Shutdown(timeout time.Duration) {
	slog.Info("shutting down worker manager...")
	m.cancel()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("worker manager stopped gracefully")
	case <-time.After(timeout):
		slog.Warn("worker manager shutdown timed out")
	}
}
