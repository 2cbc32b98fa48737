package valueobject

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrPeriodEmpty      = errors.New("period cannot be empty")
	ErrPeriodMalformed  = errors.New("period must be a positive magnitude followed by one of D, W, M, Y")
	ErrPeriodOutOfRange = errors.New("period magnitude out of range")
)

// PeriodUnit は期間の単位です
type PeriodUnit string

const (
	PeriodUnitDay   PeriodUnit = "D"
	PeriodUnitWeek  PeriodUnit = "W"
	PeriodUnitMonth PeriodUnit = "M"
	PeriodUnitYear  PeriodUnit = "Y"
)

// 単位ごとの上限値。いずれもおよそ1000年分で、結果を西暦1..9999年に収めます
var maxMagnitude = map[PeriodUnit]int{
	PeriodUnitDay:   365250,
	PeriodUnitWeek:  52200,
	PeriodUnitMonth: 12000,
	PeriodUnitYear:  1000,
}

// Direction は期間を適用する方向です
type Direction int

const (
	DirectionForward Direction = iota + 1
	DirectionBackward
)

// PeriodShift は単一単位のカレンダー期間とその適用方向を表す値オブジェクトです
type PeriodShift struct {
	magnitude int
	unit      PeriodUnit
	direction Direction
}

// ParsePeriod は "1M" や "3D" 形式の文字列をPeriodShiftに変換します
// 単位は D(日) W(週) M(月) Y(年) の大文字・小文字を受け付け、符号や複数単位は受け付けません
func ParsePeriod(s string, direction Direction) (PeriodShift, error) {
	if s == "" {
		return PeriodShift{}, ErrPeriodEmpty
	}
	if direction != DirectionForward && direction != DirectionBackward {
		return PeriodShift{}, fmt.Errorf("unknown direction: %d", direction)
	}

	digits, letter := s[:len(s)-1], s[len(s)-1]
	unit, ok := parseUnit(letter)
	if !ok || digits == "" {
		return PeriodShift{}, ErrPeriodMalformed
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return PeriodShift{}, ErrPeriodMalformed
		}
	}

	magnitude, err := strconv.Atoi(digits)
	if err != nil || magnitude < 1 || magnitude > maxMagnitude[unit] {
		return PeriodShift{}, ErrPeriodOutOfRange
	}

	return PeriodShift{magnitude: magnitude, unit: unit, direction: direction}, nil
}

func parseUnit(letter byte) (PeriodUnit, bool) {
	switch letter {
	case 'D', 'd':
		return PeriodUnitDay, true
	case 'W', 'w':
		return PeriodUnitWeek, true
	case 'M', 'm':
		return PeriodUnitMonth, true
	case 'Y', 'y':
		return PeriodUnitYear, true
	default:
		return "", false
	}
}

// Magnitude は期間の大きさを返します
func (p PeriodShift) Magnitude() int {
	return p.magnitude
}

// Unit は期間の単位を返します
func (p PeriodShift) Unit() PeriodUnit {
	return p.unit
}

// Direction は適用方向を返します
func (p PeriodShift) Direction() Direction {
	return p.direction
}

// IsZero はゼロ値かどうかを判定します
func (p PeriodShift) IsZero() bool {
	return p.magnitude == 0
}

// String は "1M" / "-1M" 形式で期間を返します
func (p PeriodShift) String() string {
	if p.IsZero() {
		return ""
	}
	s := strconv.Itoa(p.magnitude) + string(p.unit)
	if p.direction == DirectionBackward {
		return "-" + s
	}
	return s
}

// ApplyTo はカレンダー演算で期間をtに適用します
// 月・年の加減算では日を移動先の月末に丸めます (1/31 + 1M = 2/28 or 2/29)
// 壁時計時刻は保持し、夏時間の切り替えに掛かる場合は resolveLocal の規則で解決します
func (p PeriodShift) ApplyTo(t time.Time) time.Time {
	n := p.magnitude
	if p.direction == DirectionBackward {
		n = -n
	}

	year, month, day := t.Date()
	switch p.unit {
	case PeriodUnitDay:
		year, month, day = time.Date(year, month, day+n, 0, 0, 0, 0, time.UTC).Date()
	case PeriodUnitWeek:
		year, month, day = time.Date(year, month, day+7*n, 0, 0, 0, 0, time.UTC).Date()
	case PeriodUnitMonth:
		year, month, day = addMonthsClamped(year, month, day, n)
	case PeriodUnitYear:
		year, month, day = addMonthsClamped(year, month, day, 12*n)
	default:
		return t
	}

	return resolveLocal(t, year, month, day)
}

func addMonthsClamped(year int, month time.Month, day, months int) (int, time.Month, int) {
	total := int(month) - 1 + months
	year += floorDiv(total, 12)
	month = time.Month(total - floorDiv(total, 12)*12 + 1)

	if last := daysIn(year, month); day > last {
		day = last
	}
	return year, month, day
}

// resolveLocal はtの時刻を指定日付に移した瞬間をtのロケーションで返します
//   - 重複 (夏時間終了) ではtのオフセットが有効ならそれを優先します
//   - 欠落 (夏時間開始) では欠落幅だけ後ろへずらします (02:30 -> 03:30)
func resolveLocal(t time.Time, year int, month time.Month, day int) time.Time {
	loc := t.Location()
	wall := time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)

	_, offset := t.Zone()
	if c := wall.Add(-time.Duration(offset) * time.Second).In(loc); sameWall(c, wall) {
		return c
	}

	r := time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	if sameWall(r, wall) {
		return r
	}

	// 欠落中の時刻は切り替え前後どちらのオフセットでも実在しないため、
	// 切り替え前のオフセットで解釈した遅い方の瞬間を採用する
	_, offset = r.Zone()
	if c := wall.Add(-time.Duration(offset) * time.Second).In(loc); c.After(r) {
		return c
	}
	return r
}

func sameWall(t, wall time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := wall.Date()
	return y1 == y2 && m1 == m2 && d1 == d2 &&
		t.Hour() == wall.Hour() && t.Minute() == wall.Minute() &&
		t.Second() == wall.Second() && t.Nanosecond() == wall.Nanosecond()
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
