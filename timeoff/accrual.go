/*
accrual.go - Monthly leave accrual schedule

PURPOSE:
  Implements generic.AccrualSchedule for first-year monthly leave: one day
  per whole elapsed month of employment, capped at 11 days.

POLICY:
  Before the first anniversary:
    accrued = min(MaxDays, MonthsElapsed(start, asOf))
  On or after the first anniversary:
    accrued = MaxDays

  The twelfth month is not granted here; it belongs to the annual leave
  that starts on the first anniversary, which this ledger does not track.

EXAMPLE:
  accrual := timeoff.NewMonthlyLeaveAccrual()
  start := generic.NewTimePoint(2025, time.May, 20)

  accrual.AccruedDays(start, generic.NewTimePoint(2025, time.July, 25)) // 2
  accrual.AccruedDays(start, generic.NewTimePoint(2025, time.July, 19)) // 1
  accrual.AccruedDays(start, generic.NewTimePoint(2026, time.June, 1))  // 11

SEE ALSO:
  - generic/time.go: MonthsElapsed truncation rule
  - balance.go: Calculator turning accrued days into a balance
*/
package timeoff

import (
	"github.com/warp/leave-tracker/generic"
)

// =============================================================================
// MONTHLY LEAVE ACCRUAL
// =============================================================================

const (
	// MonthlyLeaveCap is the most monthly leave days granted in the first year.
	MonthlyLeaveCap = 11

	// VestingYears is when accrual stops growing and the cap is granted in full.
	VestingYears = 1
)

// MonthlyLeaveAccrual grants one day per whole month during the first
// VestingYears of employment.
type MonthlyLeaveAccrual struct {
	MaxDays      int
	VestingYears int
}

var _ generic.AccrualSchedule = (*MonthlyLeaveAccrual)(nil)

func NewMonthlyLeaveAccrual() *MonthlyLeaveAccrual {
	return &MonthlyLeaveAccrual{MaxDays: MonthlyLeaveCap, VestingYears: VestingYears}
}

// AccruedDays returns days earned from start up to asOf.
func (a *MonthlyLeaveAccrual) AccruedDays(start, asOf generic.TimePoint) int {
	if a.Window(start).Ended(asOf) {
		return a.MaxDays
	}
	return min(a.MaxDays, generic.MonthsElapsed(start, asOf))
}

// Window is [start, first anniversary - 1 day].
func (a *MonthlyLeaveAccrual) Window(start generic.TimePoint) generic.Period {
	return generic.Period{
		Start: start,
		End:   generic.Anniversary(start, a.VestingYears).AddDays(-1),
	}
}
