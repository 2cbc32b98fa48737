package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod_ValidDesignators(t *testing.T) {
	tests := []struct {
		input     string
		magnitude int
		unit      PeriodUnit
	}{
		{"1M", 1, PeriodUnitMonth},
		{"1Y", 1, PeriodUnitYear},
		{"3D", 3, PeriodUnitDay},
		{"2W", 2, PeriodUnitWeek},
		{"12m", 12, PeriodUnitMonth},
		{"007d", 7, PeriodUnitDay},
		{"1000Y", 1000, PeriodUnitYear},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePeriod(tt.input, DirectionForward)

			require.NoError(t, err)
			assert.Equal(t, tt.magnitude, p.Magnitude())
			assert.Equal(t, tt.unit, p.Unit())
			assert.Equal(t, DirectionForward, p.Direction())
		})
	}
}

func TestParsePeriod_InvalidDesignators(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrPeriodEmpty},
		{"1Year", ErrPeriodMalformed},
		{"M", ErrPeriodMalformed},
		{"P1M", ErrPeriodMalformed},
		{"-1M", ErrPeriodMalformed},
		{"+1M", ErrPeriodMalformed},
		{"1Y2M", ErrPeriodMalformed},
		{"1 M", ErrPeriodMalformed},
		{"1H", ErrPeriodMalformed},
		{"１M", ErrPeriodMalformed},
		{"0M", ErrPeriodOutOfRange},
		{"1001Y", ErrPeriodOutOfRange},
		{"99999999999999999999D", ErrPeriodOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParsePeriod(tt.input, DirectionBackward)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParsePeriod_UnknownDirection_ReturnsError(t *testing.T) {
	_, err := ParsePeriod("1M", Direction(0))

	assert.Error(t, err)
}

func TestPeriodShift_String_RoundTripsThroughParser(t *testing.T) {
	forward, err := ParsePeriod("3w", DirectionForward)
	require.NoError(t, err)
	backward, err := ParsePeriod("1Y", DirectionBackward)
	require.NoError(t, err)

	assert.Equal(t, "3W", forward.String())
	assert.Equal(t, "-1Y", backward.String())
	assert.Equal(t, "", PeriodShift{}.String())

	reparsed, err := ParsePeriod(forward.String(), DirectionForward)
	require.NoError(t, err)
	assert.Equal(t, forward, reparsed)
}

func TestPeriodShift_ApplyTo_CalendarArithmetic(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tests := []struct {
		name      string
		period    string
		direction Direction
		from      time.Time
		want      time.Time
	}{
		{
			name:      "month forward clamps to leap february",
			period:    "1M",
			direction: DirectionForward,
			from:      time.Date(2024, time.January, 31, 10, 30, 0, 0, time.UTC),
			want:      time.Date(2024, time.February, 29, 10, 30, 0, 0, time.UTC),
		},
		{
			name:      "month backward clamps to short month",
			period:    "1M",
			direction: DirectionBackward,
			from:      time.Date(2026, time.March, 31, 8, 0, 0, 5, time.UTC),
			want:      time.Date(2026, time.February, 28, 8, 0, 0, 5, time.UTC),
		},
		{
			name:      "month backward crosses year",
			period:    "2M",
			direction: DirectionBackward,
			from:      time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			want:      time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "year backward from leap day",
			period:    "1Y",
			direction: DirectionBackward,
			from:      time.Date(2024, time.February, 29, 12, 0, 0, 0, tokyo),
			want:      time.Date(2023, time.February, 28, 12, 0, 0, 0, tokyo),
		},
		{
			name:      "thirteen months forward",
			period:    "13M",
			direction: DirectionForward,
			from:      time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			want:      time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "weeks are seven days",
			period:    "2W",
			direction: DirectionForward,
			from:      time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC),
			want:      time.Date(2026, time.November, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			name:      "days keep wall clock",
			period:    "3D",
			direction: DirectionBackward,
			from:      time.Date(2026, time.March, 2, 23, 59, 59, 0, time.UTC),
			want:      time.Date(2026, time.February, 27, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePeriod(tt.period, tt.direction)
			require.NoError(t, err)

			got := p.ApplyTo(tt.from)

			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			assert.Equal(t, tt.from.Location(), got.Location())
		})
	}
}

func TestPeriodShift_ApplyTo_IsNotAFixedDuration(t *testing.T) {
	p, err := ParsePeriod("1M", DirectionForward)
	require.NoError(t, err)

	feb := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 28*24*time.Hour, p.ApplyTo(feb).Sub(feb))
	assert.Equal(t, 31*24*time.Hour, p.ApplyTo(mar).Sub(mar))
}

func TestPeriodShift_ApplyTo_MaxRangeStaysEncodable(t *testing.T) {
	now := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

	for _, s := range []string{"1000Y", "12000M", "52200W", "365250D"} {
		forward, err := ParsePeriod(s, DirectionForward)
		require.NoError(t, err)
		backward, err := ParsePeriod(s, DirectionBackward)
		require.NoError(t, err)

		_, err = forward.ApplyTo(now).MarshalJSON()
		assert.NoError(t, err, s)
		_, err = backward.ApplyTo(now).MarshalJSON()
		assert.NoError(t, err, s)
	}
}

func TestPeriodShift_ApplyTo_DaylightSavingTransitions(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	est := time.FixedZone("EST", -5*60*60)
	edt := time.FixedZone("EDT", -4*60*60)

	tests := []struct {
		name      string
		period    string
		direction Direction
		from      time.Time
		want      time.Time
	}{
		{
			name:      "month into spring gap moves forward by the gap",
			period:    "1M",
			direction: DirectionForward,
			from:      time.Date(2026, time.February, 8, 2, 30, 0, 0, est),
			want:      time.Date(2026, time.March, 8, 3, 30, 0, 0, edt),
		},
		{
			name:      "day into spring gap moves forward by the gap",
			period:    "1D",
			direction: DirectionForward,
			from:      time.Date(2026, time.March, 7, 2, 30, 0, 0, est),
			want:      time.Date(2026, time.March, 8, 3, 30, 0, 0, edt),
		},
		{
			name:      "backward day into spring gap moves forward by the gap",
			period:    "1D",
			direction: DirectionBackward,
			from:      time.Date(2026, time.March, 9, 2, 30, 0, 0, edt),
			want:      time.Date(2026, time.March, 8, 3, 30, 0, 0, edt),
		},
		{
			name:      "week across spring transition keeps wall clock",
			period:    "1W",
			direction: DirectionForward,
			from:      time.Date(2026, time.March, 5, 9, 0, 0, 0, est),
			want:      time.Date(2026, time.March, 12, 9, 0, 0, 0, edt),
		},
		{
			name:      "autumn overlap keeps daylight offset",
			period:    "1D",
			direction: DirectionForward,
			from:      time.Date(2026, time.October, 31, 1, 30, 0, 0, edt),
			want:      time.Date(2026, time.November, 1, 1, 30, 0, 0, edt),
		},
		{
			name:      "autumn overlap keeps standard offset",
			period:    "1D",
			direction: DirectionBackward,
			from:      time.Date(2026, time.November, 2, 1, 30, 0, 0, est),
			want:      time.Date(2026, time.November, 1, 1, 30, 0, 0, est),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePeriod(tt.period, tt.direction)
			require.NoError(t, err)

			got := p.ApplyTo(tt.from.In(newYork))

			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			assert.Equal(t, newYork, got.Location())
		})
	}
}

func TestPeriodShift_ApplyTo_PastNeverExceedsNow(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	p, err := ParsePeriod("1M", DirectionBackward)
	require.NoError(t, err)

	// 2026-04-08T02:30 EDT の1か月前は欠落中の 03-08T02:30
	now := time.Date(2026, time.April, 8, 2, 30, 0, 0, newYork)
	got := p.ApplyTo(now)

	assert.True(t, got.Before(now))
	assert.Equal(t, "2026-03-08T03:30:00-04:00", got.Format(time.RFC3339))
}
