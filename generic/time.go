package generic

import (
	"regexp"
	"time"
)

// =============================================================================
// TIME POINT - Calendar date without time-of-day
// =============================================================================

// DateLayout is the only accepted textual date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// TimePoint is a calendar date. The wrapped time is always midnight UTC so
// two TimePoints compare by calendar day only.
type TimePoint struct {
	Time time.Time
}

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the time-of-day and zone of t, keeping its local calendar date.
func DateOf(t time.Time) TimePoint {
	return NewTimePoint(t.Year(), t.Month(), t.Day())
}

func Today() TimePoint {
	return DateOf(time.Now())
}

// ParseDate accepts exactly YYYY-MM-DD and rejects impossible calendar
// dates such as 2025-02-30.
func ParseDate(s string) (TimePoint, error) {
	if !datePattern.MatchString(s) {
		return TimePoint{}, &InputError{Field: "date", Value: s, Kind: ErrInvalidDateFormat}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return TimePoint{}, &InputError{Field: "date", Value: s, Kind: ErrInvalidDateFormat}
	}
	return DateOf(t), nil
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool { return tp.normalize().Before(other.normalize()) }
func (tp TimePoint) Equal(other TimePoint) bool  { return tp.normalize().Equal(other.normalize()) }
func (tp TimePoint) After(other TimePoint) bool  { return tp.normalize().After(other.normalize()) }

func (tp TimePoint) normalize() time.Time {
	return time.Date(tp.Time.Year(), tp.Time.Month(), tp.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic. AddDate normalizes overflowing days, so Feb 29 plus one year
// lands on Mar 1 in a non-leap year.
func (tp TimePoint) AddDays(n int) TimePoint {
	return TimePoint{Time: tp.normalize().AddDate(0, 0, n)}
}

func (tp TimePoint) AddYears(n int) TimePoint {
	return TimePoint{Time: tp.normalize().AddDate(n, 0, 0)}
}

// Properties
func (tp TimePoint) Year() int         { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month { return tp.Time.Month() }
func (tp TimePoint) Day() int          { return tp.Time.Day() }
func (tp TimePoint) IsZero() bool      { return tp.Time.IsZero() }

func (tp TimePoint) String() string {
	return tp.Time.Format(DateLayout)
}

// =============================================================================
// CALENDAR ARITHMETIC
// =============================================================================

// MonthsElapsed counts whole months from `from` to `to`.
//
// The raw month difference is reduced by one when to's day-of-month is
// smaller than from's, because the monthly anniversary has not happened yet.
// Days are compared as plain numbers: a start on the 31st is not treated as
// month-end in a 30-day month. The result is never negative.
func MonthsElapsed(from, to TimePoint) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// Anniversary returns from shifted by n years, month and day unchanged.
// A Feb 29 date in a non-leap target year rolls forward to Mar 1.
func Anniversary(from TimePoint, years int) TimePoint {
	return from.AddYears(years)
}
