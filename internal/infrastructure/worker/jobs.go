package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// DefaultTZWatchInterval はタイムゾーンDB監視ジョブのデフォルト間隔です
const DefaultTZWatchInterval = 5 * time.Minute

// ErrTZDatabaseChanged は読み込み後にタイムゾーンDBが更新されたことを表します
// 新しい規則を反映するにはプロセスの再起動が必要です
var ErrTZDatabaseChanged = errors.New("time zone database changed on disk; restart to reload")

// ChangeDetector はタイムゾーンDBの更新を検出するインターフェースです
type ChangeDetector interface {
	Changed() (bool, error)
}

// NewTZWatchJob はタイムゾーンDBの更新を監視するジョブを作成します
// 更新を検出した場合は ErrTZDatabaseChanged を返し、レディネスチェックに反映させます
func NewTZWatchJob(detector ChangeDetector, interval time.Duration) Job {
	if interval <= 0 {
		interval = DefaultTZWatchInterval
	}

	return Job{
		Name:     "tzdb_watch",
		Interval: interval,
		Fn: func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			changed, err := detector.Changed()
			if err != nil {
				slog.Warn("time zone database check failed", "error", err)
				return err
			}
			if changed {
				slog.Warn("time zone database changed on disk")
				return ErrTZDatabaseChanged
			}
			slog.Debug("time zone database unchanged")
			return nil
		},
	}
}
