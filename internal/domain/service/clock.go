package service

import "time"

// Clock は現在時刻を提供するドメインサービスインターフェースです
type Clock interface {
	// Now は現在時刻を返します
	Now() time.Time
}
