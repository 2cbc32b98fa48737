package valueobject

import (
	"errors"
	"time"
)

var (
	ErrTimeZoneEmpty      = errors.New("time zone cannot be empty")
	ErrTimeZoneNoLocation = errors.New("time zone has no location")
)

// TimeZone はタイムゾーンを表す値オブジェクトです
// IANA Time Zone Database形式のID (例: "Asia/Tokyo", "UTC") と解決済みのLocationを保持します
type TimeZone struct {
	id       string
	location *time.Location
}

// NewTimeZone は新しいTimeZoneを作成します
// IDの存在確認はZoneCatalog側の責務で、ここでは空値のみ検証します
func NewTimeZone(id string, location *time.Location) (TimeZone, error) {
	if id == "" {
		return TimeZone{}, ErrTimeZoneEmpty
	}
	if location == nil {
		return TimeZone{}, ErrTimeZoneNoLocation
	}
	return TimeZone{id: id, location: location}, nil
}

// UTCTimeZone はUTCのTimeZoneを返します
func UTCTimeZone() TimeZone {
	return TimeZone{id: "UTC", location: time.UTC}
}

// ID はタイムゾーンIDを返します
func (tz TimeZone) ID() string {
	return tz.id
}

// String はタイムゾーンを文字列で返します
func (tz TimeZone) String() string {
	return tz.id
}

// Location はtime.Locationを返します
func (tz TimeZone) Location() *time.Location {
	return tz.location
}

// IsZero はゼロ値かどうかを判定します
func (tz TimeZone) IsZero() bool {
	return tz.id == ""
}

// Equals は2つのTimeZoneが等しいかを判定します
func (tz TimeZone) Equals(other TimeZone) bool {
	return tz.id == other.id
}
