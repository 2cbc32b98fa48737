package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/Hiro-mackay/timeserver/internal/domain/service"
)

// ページネーションのデフォルト値
const (
	DefaultZonesPerPage = 20
	MaxZonesPerPage     = 100
)

// ListZonesInput はゾーン一覧の入力を定義します
type ListZonesInput struct {
	Prefix  string // 前方一致(大文字・小文字を区別)
	Page    int    // 1始まり
	PerPage int    // デフォルト: 20, 最大: 100
}

// ZoneSummary は現在時刻におけるゾーンの概要です
type ZoneSummary struct {
	ID           string
	Abbreviation string
	Offset       string // 例: "+09:00"
	OffsetSecs   int
}

// ListZonesOutput はゾーン一覧の出力を定義します
type ListZonesOutput struct {
	Items   []ZoneSummary
	Total   int
	Page    int
	PerPage int
}

// ListZonesQuery はゾーン一覧クエリです
type ListZonesQuery struct {
	catalog service.ZoneCatalog
	clock   service.Clock
}

// NewListZonesQuery は新しいListZonesQueryを作成します
func NewListZonesQuery(catalog service.ZoneCatalog, clock service.Clock) *ListZonesQuery {
	return &ListZonesQuery{
		catalog: catalog,
		clock:   clock,
	}
}

// Execute は認識可能なゾーンIDの一覧を取得します
func (q *ListZonesQuery) Execute(ctx context.Context, input ListZonesInput) (*ListZonesOutput, error) {
	// 1. ページネーションの正規化
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage <= 0 {
		perPage = DefaultZonesPerPage
	}
	if perPage > MaxZonesPerPage {
		perPage = MaxZonesPerPage
	}

	// 2. 前方一致で絞り込み
	ids := q.catalog.IDs()
	if input.Prefix != "" {
		filtered := make([]string, 0, len(ids))
		for _, id := range ids {
			if strings.HasPrefix(id, input.Prefix) {
				filtered = append(filtered, id)
			}
		}
		ids = filtered
	}
	total := len(ids)

	// 3. ページの切り出し
	// 範囲外のページは乗算前に判定する (巨大なpageでのオーバーフロー防止)
	start := total
	if page-1 <= total/perPage {
		start = min((page-1)*perPage, total)
	}
	end := min(start+perPage, total)
	ids = ids[start:end]

	// 4. 現在時刻での略称とオフセットを算出
	now := q.clock.Now()
	items := make([]ZoneSummary, 0, len(ids))
	for _, id := range ids {
		loc, ok := q.catalog.Lookup(id)
		if !ok {
			continue
		}
		abbr, offset := now.In(loc).Zone()
		items = append(items, ZoneSummary{
			ID:           id,
			Abbreviation: abbr,
			Offset:       formatOffset(offset),
			OffsetSecs:   offset,
		})
	}

	return &ListZonesOutput{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// formatOffset は秒単位のオフセットを "+09:00" 形式に変換します
func formatOffset(secs int) string {
	sign := byte('+')
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	return fmt.Sprintf("%c%02d:%02d", sign, secs/3600, secs/60%60)
}
