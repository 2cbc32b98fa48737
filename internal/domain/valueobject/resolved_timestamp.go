package valueobject

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrTimestampMalformed      = errors.New("timestamp is not an ISO-8601 zoned date-time")
	ErrTimestampOffsetMismatch = errors.New("timestamp offset does not match its zone")
)

// ResolvedTimestamp はタイムゾーン付きの解決済み時刻を表す値オブジェクトです
type ResolvedTimestamp struct {
	time   time.Time
	zoneID string
}

// NewResolvedTimestamp は新しいResolvedTimestampを作成します
// zoneID が空の場合、ゾーン名を持たない(オフセットのみの)時刻として扱います
func NewResolvedTimestamp(t time.Time, zoneID string) ResolvedTimestamp {
	return ResolvedTimestamp{time: t, zoneID: zoneID}
}

// Time は時刻を返します
func (r ResolvedTimestamp) Time() time.Time {
	return r.time
}

// ZoneID はタイムゾーンIDを返します
func (r ResolvedTimestamp) ZoneID() string {
	return r.zoneID
}

// String はISO-8601のゾーン付き日時文字列を返します
// 例: "2026-10-19T18:04:05.123456789+09:00[Asia/Tokyo]"
func (r ResolvedTimestamp) String() string {
	s := r.time.Format(time.RFC3339Nano)
	if r.zoneID != "" {
		s += "[" + r.zoneID + "]"
	}
	return s
}

// Equals は同一時刻・同一ゾーンかどうかを判定します
func (r ResolvedTimestamp) Equals(other ResolvedTimestamp) bool {
	return r.time.Equal(other.time) && r.zoneID == other.zoneID
}

// ParseResolvedTimestamp はStringで出力した形式を解析します
// ゾーンIDが付与されている場合、オフセットがそのゾーンの規則と一致するかを検証します
func ParseResolvedTimestamp(s string) (ResolvedTimestamp, error) {
	body, zoneID := s, ""
	if strings.HasSuffix(s, "]") {
		open := strings.LastIndexByte(s, '[')
		if open < 0 {
			return ResolvedTimestamp{}, ErrTimestampMalformed
		}
		body, zoneID = s[:open], s[open+1:len(s)-1]
		if zoneID == "" {
			return ResolvedTimestamp{}, ErrTimestampMalformed
		}
	}

	t, err := time.Parse(time.RFC3339Nano, body)
	if err != nil {
		return ResolvedTimestamp{}, fmt.Errorf("%w: %v", ErrTimestampMalformed, err)
	}

	if zoneID == "" {
		return ResolvedTimestamp{time: t}, nil
	}

	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return ResolvedTimestamp{}, fmt.Errorf("unknown zone %q: %w", zoneID, err)
	}

	zoned := t.In(loc)
	_, parsedOffset := t.Zone()
	if _, zoneOffset := zoned.Zone(); parsedOffset != zoneOffset {
		return ResolvedTimestamp{}, ErrTimestampOffsetMismatch
	}

	return ResolvedTimestamp{time: zoned, zoneID: zoneID}, nil
}
