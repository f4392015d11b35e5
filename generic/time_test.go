package generic_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-tracker/generic"
)

func date(year int, month time.Month, day int) generic.TimePoint {
	return generic.NewTimePoint(year, month, day)
}

// =============================================================================
// MONTHS ELAPSED
// =============================================================================

func TestMonthsElapsed(t *testing.T) {
	tests := []struct {
		name string
		from generic.TimePoint
		to   generic.TimePoint
		want int
	}{
		{"same day", date(2025, time.May, 20), date(2025, time.May, 20), 0},
		{"anniversary day counts", date(2025, time.May, 20), date(2025, time.July, 20), 2},
		{"after anniversary day", date(2025, time.May, 20), date(2025, time.July, 25), 2},
		{"before anniversary day", date(2025, time.May, 20), date(2025, time.July, 19), 1},
		{"across year boundary", date(2024, time.November, 10), date(2025, time.February, 10), 3},
		{"across year boundary short", date(2024, time.November, 10), date(2025, time.February, 9), 2},
		{"to before from clamps", date(2025, time.May, 20), date(2025, time.March, 1), 0},
		{"same month earlier day clamps", date(2025, time.May, 20), date(2025, time.May, 1), 0},
		{"day 31 against 30-day month", date(2025, time.January, 31), date(2025, time.April, 30), 2},
		{"day 31 against february", date(2025, time.January, 31), date(2025, time.February, 28), 0},
		{"many years", date(2020, time.March, 1), date(2025, time.March, 1), 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generic.MonthsElapsed(tt.from, tt.to))
		})
	}
}

func TestMonthsElapsed_NeverNegative(t *testing.T) {
	from := date(2025, time.June, 15)
	for d := date(2024, time.January, 1); d.Before(from); d = d.AddDays(1) {
		if got := generic.MonthsElapsed(from, d); got != 0 {
			t.Fatalf("MonthsElapsed(%s, %s) = %d, want 0", from, d, got)
		}
	}
}

// =============================================================================
// ANNIVERSARY
// =============================================================================

func TestAnniversary(t *testing.T) {
	assert.Equal(t, date(2026, time.May, 20), generic.Anniversary(date(2025, time.May, 20), 1))
	assert.Equal(t, date(2027, time.December, 31), generic.Anniversary(date(2025, time.December, 31), 2))
}

func TestAnniversary_LeapDayRollsToMarchFirst(t *testing.T) {
	// GIVEN: Start date on Feb 29 of a leap year
	// WHEN: Computing the first anniversary in a non-leap year
	// THEN: It normalizes to Mar 1

	got := generic.Anniversary(date(2024, time.February, 29), 1)
	assert.Equal(t, date(2025, time.March, 1), got)

	// Four years later Feb 29 exists again.
	assert.Equal(t, date(2028, time.February, 29), generic.Anniversary(date(2024, time.February, 29), 4))
}

// =============================================================================
// PARSING & COMPARISON
// =============================================================================

func TestParseDate(t *testing.T) {
	d, err := generic.ParseDate("2025-05-20")
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.May, 20), d)
	assert.Equal(t, "2025-05-20", d.String())

	for _, bad := range []string{"", "2025-5-20", "20250520", "2025/05/20", "2025-05-20T00:00:00Z", " 2025-05-20", "2025-02-30", "2025-13-01", "abcd-ef-gh"} {
		_, err := generic.ParseDate(bad)
		assert.Truef(t, errors.Is(err, generic.ErrInvalidDateFormat), "%q should be rejected, got %v", bad, err)
	}
}

func TestTimePoint_Comparison(t *testing.T) {
	a := date(2025, time.May, 20)
	b := date(2025, time.May, 21)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))

	// Time of day is ignored.
	withTime := generic.TimePoint{Time: time.Date(2025, time.May, 20, 17, 30, 0, 0, time.UTC)}
	assert.True(t, withTime.Equal(a))
	assert.Equal(t, a, generic.DateOf(withTime.Time))
}

func TestPeriod(t *testing.T) {
	p := generic.Period{Start: date(2025, time.May, 20), End: date(2026, time.May, 19)}

	assert.False(t, p.Ended(date(2025, time.May, 20)))
	assert.False(t, p.Ended(date(2026, time.May, 19)))
	assert.True(t, p.Ended(date(2026, time.May, 20)))
	assert.Equal(t, "[2025-05-20, 2026-05-19]", p.String())
}
