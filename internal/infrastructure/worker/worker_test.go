package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDetector struct {
	changed bool
	err     error
}

func (d stubDetector) Changed() (bool, error) {
	return d.changed, d.err
}

func TestManager_RunsJobImmediatelyAndOnTick(t *testing.T) {
	var calls atomic.Int32
	m := NewManager()
	m.Register(Job{
		Name:     "counter",
		Interval: 10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			calls.Add(1)
			return nil
		},
	})

	m.Start()
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	m.Shutdown(time.Second)

	st, ok := m.Status("counter")
	require.True(t, ok)
	assert.GreaterOrEqual(t, st.Runs, 2)
	assert.NoError(t, st.LastErr)
	assert.NoError(t, m.Health(context.Background()))
}

func TestManager_Health_ReportsFailedJobs(t *testing.T) {
	m := NewManager()
	m.Register(NewTZWatchJob(stubDetector{changed: true}, time.Hour))

	m.Start()
	require.Eventually(t, func() bool {
		_, ok := m.Status("tzdb_watch")
		return ok
	}, time.Second, 5*time.Millisecond)
	m.Shutdown(time.Second)

	err := m.Health(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTZDatabaseChanged)
	assert.Contains(t, err.Error(), "tzdb_watch")
}

func TestManager_Status_UnknownJob(t *testing.T) {
	m := NewManager()

	_, ok := m.Status("missing")

	assert.False(t, ok)
}

func TestTZWatchJob(t *testing.T) {
	probeErr := errors.New("stat failed")

	tests := []struct {
		name     string
		detector stubDetector
		wantErr  error
	}{
		{"unchanged", stubDetector{}, nil},
		{"changed", stubDetector{changed: true}, ErrTZDatabaseChanged},
		{"probe error", stubDetector{err: probeErr}, probeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := NewTZWatchJob(tt.detector, 0)

			err := job.Fn(context.Background())

			assert.Equal(t, "tzdb_watch", job.Name)
			assert.Equal(t, DefaultTZWatchInterval, job.Interval)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestTZWatchJob_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewTZWatchJob(stubDetector{changed: true}, time.Minute).Fn(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
