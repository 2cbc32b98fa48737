package clock

import "time"

// SystemClock はOSの時計を使うservice.Clockの実装です
type SystemClock struct{}

// NewSystemClock は新しいSystemClockを作成します
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now は現在時刻を返します
func (c *SystemClock) Now() time.Time {
	return time.Now()
}
