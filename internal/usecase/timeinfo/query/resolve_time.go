package query

import (
	"context"
	"time"

	"github.com/Hiro-mackay/timeserver/internal/domain/service"
	"github.com/Hiro-mackay/timeserver/internal/domain/valueobject"
	"github.com/Hiro-mackay/timeserver/pkg/apperror"
	"github.com/Hiro-mackay/timeserver/pkg/logger"
)

// TimeResolver は現在時刻を取得し、ゾーン変換と期間シフトを適用します
type TimeResolver struct {
	clock       service.Clock
	defaultZone *valueobject.TimeZone
}

// NewTimeResolver は新しいTimeResolverを作成します
// defaultZone が nil の場合、ゾーンIDなしのtime.Localを既定とします
func NewTimeResolver(clock service.Clock, defaultZone *valueobject.TimeZone) *TimeResolver {
	return &TimeResolver{
		clock:       clock,
		defaultZone: defaultZone,
	}
}

// Resolve は検証済みパラメータから時刻を解決します
// 期間の加減算は対象ゾーンの暦上で行います
func (r *TimeResolver) Resolve(params TimeParams) valueobject.ResolvedTimestamp {
	loc, zoneID := time.Local, ""
	switch {
	case params.Zone != nil:
		loc, zoneID = params.Zone.Location(), params.Zone.ID()
	case r.defaultZone != nil:
		loc, zoneID = r.defaultZone.Location(), r.defaultZone.ID()
	}

	t := r.clock.Now().In(loc)
	if params.Shift != nil {
		t = params.Shift.ApplyTo(t)
	}
	return valueobject.NewResolvedTimestamp(t, zoneID)
}

// ResolveTimeInput は時刻取得の入力を定義します
// 各フィールドは nil で未指定、空文字を含む値で指定ありを表します
type ResolveTimeInput struct {
	TZ     *string
	Future *string
	Past   *string
}

// ResolveTimeOutput は時刻取得の出力を定義します
type ResolveTimeOutput struct {
	Timestamp valueobject.ResolvedTimestamp
}

// ResolveTimeQuery は時刻取得クエリです
type ResolveTimeQuery struct {
	validator *ParamValidator
	resolver  *TimeResolver
}

// NewResolveTimeQuery は新しいResolveTimeQueryを作成します
func NewResolveTimeQuery(validator *ParamValidator, resolver *TimeResolver) *ResolveTimeQuery {
	return &ResolveTimeQuery{
		validator: validator,
		resolver:  resolver,
	}
}

// Execute はパラメータを検証し、時刻を解決します
func (q *ResolveTimeQuery) Execute(ctx context.Context, input ResolveTimeInput) (*ResolveTimeOutput, error) {
	// 1. パラメータ検証
	params, err := q.validator.Validate(input.TZ, input.Future, input.Past)
	if err != nil {
		if apperror.IsInvalidRequest(err) {
			logger.Debug(ctx, "time parameters rejected", "error", err.Error())
		}
		return nil, err
	}

	// 2. 時刻の解決
	ts := q.resolver.Resolve(params)

	logger.Debug(ctx, "time resolved",
		"zone", ts.ZoneID(),
		"shift", shiftString(params.Shift),
		"time", ts.String(),
	)

	return &ResolveTimeOutput{Timestamp: ts}, nil
}

func shiftString(shift *valueobject.PeriodShift) string {
	if shift == nil {
		return ""
	}
	return shift.String()
}
