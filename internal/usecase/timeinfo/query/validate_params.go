package query

import (
	"fmt"

	"github.com/Hiro-mackay/timeserver/internal/domain/service"
	"github.com/Hiro-mackay/timeserver/internal/domain/valueobject"
	"github.com/Hiro-mackay/timeserver/pkg/apperror"
)

// MsgFutureAndPast は future と past が同時に指定された場合のメッセージです
const MsgFutureAndPast = `Either "future" or "past" can be populated, but not both`

// MsgUnknownTimeZone は未知のタイムゾーンに対するメッセージを返します
func MsgUnknownTimeZone(tz string) string {
	return fmt.Sprintf("Time zone %q not recognized", tz)
}

// MsgUnknownPeriod は解析できない期間に対するメッセージを返します
// param は "future" または "past" です
func MsgUnknownPeriod(value, param string) string {
	return fmt.Sprintf("Time format %q not recognized for %s parameter", value, param)
}

// TimeParams は検証済みのリクエストパラメータです
// Zone と Shift はいずれも省略可能です
type TimeParams struct {
	Zone  *valueobject.TimeZone
	Shift *valueobject.PeriodShift
}

// ParamValidator は tz / future / past パラメータを検証します
type ParamValidator struct {
	catalog service.ZoneCatalog
}

// NewParamValidator は新しいParamValidatorを作成します
func NewParamValidator(catalog service.ZoneCatalog) *ParamValidator {
	return &ParamValidator{catalog: catalog}
}

// Validate はパラメータを検証します
// nil は未指定を表し、空文字は指定ありとして扱います
func (v *ParamValidator) Validate(tz, future, past *string) (TimeParams, error) {
	// 1. future と past の排他チェック
	if future != nil && past != nil {
		return TimeParams{}, apperror.NewInvalidRequestError(MsgFutureAndPast)
	}

	var params TimeParams

	// 2. タイムゾーンの存在確認(完全一致)
	if tz != nil {
		loc, ok := v.catalog.Lookup(*tz)
		if !ok {
			return TimeParams{}, apperror.NewInvalidRequestError(MsgUnknownTimeZone(*tz))
		}
		zone, err := valueobject.NewTimeZone(*tz, loc)
		if err != nil {
			return TimeParams{}, apperror.NewInvalidRequestError(MsgUnknownTimeZone(*tz))
		}
		params.Zone = &zone
	}

	// 3-4. 期間の解析
	switch {
	case future != nil:
		shift, err := valueobject.ParsePeriod(*future, valueobject.DirectionForward)
		if err != nil {
			return TimeParams{}, apperror.NewInvalidRequestError(MsgUnknownPeriod(*future, "future"))
		}
		params.Shift = &shift
	case past != nil:
		shift, err := valueobject.ParsePeriod(*past, valueobject.DirectionBackward)
		if err != nil {
			return TimeParams{}, apperror.NewInvalidRequestError(MsgUnknownPeriod(*past, "past"))
		}
		params.Shift = &shift
	}

	return params, nil
}
