package response

import (
	"time"

	"github.com/Hiro-mackay/timeserver/internal/domain/valueobject"
	timeqry "github.com/Hiro-mackay/timeserver/internal/usecase/timeinfo/query"
)

// TimeResponse は時刻取得レスポンスです
// 共通エンベロープを使わず、このままボディとして返します
type TimeResponse struct {
	Time    time.Time `json:"time"`
	TimeStr string    `json:"timeStr"`
}

// ToTimeResponse はResolvedTimestampからTimeResponseを作成します
func ToTimeResponse(ts valueobject.ResolvedTimestamp) TimeResponse {
	return TimeResponse{
		Time:    ts.Time(),
		TimeStr: ts.String(),
	}
}

// ZoneResponse はゾーン情報レスポンスです
type ZoneResponse struct {
	ID            string `json:"id"`
	Abbreviation  string `json:"abbreviation"`
	Offset        string `json:"offset"`
	OffsetSeconds int    `json:"offsetSeconds"`
}

// ToZoneResponses はゾーン概要の一覧をレスポンスに変換します
func ToZoneResponses(items []timeqry.ZoneSummary) []ZoneResponse {
	zones := make([]ZoneResponse, len(items))
	for i, item := range items {
		zones[i] = ZoneResponse{
			ID:            item.ID,
			Abbreviation:  item.Abbreviation,
			Offset:        item.Offset,
			OffsetSeconds: item.OffsetSecs,
		}
	}
	return zones
}

// IndexResponse はAPIインデックスレスポンスです
type IndexResponse struct {
	Service   string   `json:"service"`
	Endpoints []string `json:"endpoints"`
	TZVersion string   `json:"tzVersion,omitempty"`
	TZSource  string   `json:"tzSource,omitempty"`
	Zones     int      `json:"zones"`
}
