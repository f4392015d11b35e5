/*
balance.go - Balance calculation and usage validation

PURPOSE:
  The core of the tracker. Given a ledger record and "today", derive what
  has accrued, what has been used and what remains, and decide whether a new
  usage request fits.

KEY INSIGHT:
  Nothing here is cached or stored. Calculator is a pure function of
  (record, today): the same inputs always give the same Balance, and both
  "add" and "status" go through the same ComputeBalance so they cannot
  disagree.

BALANCE COMPONENTS:
  AccruedDays:        days earned under the accrual schedule
  AccruedHours:       AccruedDays * UnitHours
  UsedHours:          sum of every usage entry
  RemainingHours:     AccruedHours - UsedHours (not clamped)
  RemainingDays:      RemainingHours / UnitHours
  RemainingHoursPart: RemainingHours % UnitHours

EXAMPLE:
  Start 2025-05-20, today 2025-07-25, 8-hour days, used 8h + 4h:

  AccruedDays = 2, AccruedHours = 16, UsedHours = 12
  RemainingHours = 4 -> 0 days 4 hours

NEGATIVE REMAINDERS:
  A ledger edited by hand can hold more usage than accrual. The negative
  remainder is reported as-is. Go division truncates toward zero, so -12h
  with 8-hour days splits into -1 day -4 hours and the split identity
  RemainingDays*UnitHours + RemainingHoursPart == RemainingHours still holds.

SEE ALSO:
  - accrual.go: MonthlyLeaveAccrual
  - ledger.go: LeaveLedger wiring the Calculator to a Store
*/
package timeoff

import (
	"github.com/warp/leave-tracker/generic"
)

// =============================================================================
// BALANCE - Derived, never persisted
// =============================================================================

type Balance struct {
	AsOf      generic.TimePoint
	StartDate generic.TimePoint
	UnitHours int

	AccruedDays  int
	AccruedHours int
	UsedHours    int

	RemainingHours     int
	RemainingDays      int
	RemainingHoursPart int

	// AccrualWindow is the period during which AccruedDays still grows.
	AccrualWindow generic.Period
}

// Vested returns true once accrual no longer grows.
func (b Balance) Vested() bool {
	return b.AccrualWindow.Ended(b.AsOf)
}

// Remaining returns the remaining balance as an hour amount.
func (b Balance) Remaining() generic.Amount {
	return generic.Hours(b.RemainingHours)
}

// RemainingInDays returns the remaining balance as fractional days.
func (b Balance) RemainingInDays() generic.Amount {
	return b.Remaining().ToDays(b.UnitHours)
}

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculator applies an accrual schedule to a ledger record.
type Calculator struct {
	Accrual generic.AccrualSchedule
}

// NewCalculator returns a Calculator for the monthly leave policy.
func NewCalculator() *Calculator {
	return &Calculator{Accrual: NewMonthlyLeaveAccrual()}
}

// ComputeBalance derives the balance of record as of today.
func (c *Calculator) ComputeBalance(record generic.LedgerRecord, today generic.TimePoint) Balance {
	accruedDays := c.Accrual.AccruedDays(record.StartDate, today)
	accruedHours := accruedDays * record.UnitHours
	used := record.UsedHours()
	remaining := accruedHours - used

	b := Balance{
		AsOf:           today,
		StartDate:      record.StartDate,
		UnitHours:      record.UnitHours,
		AccruedDays:    accruedDays,
		AccruedHours:   accruedHours,
		UsedHours:      used,
		RemainingHours: remaining,
		AccrualWindow:  c.Accrual.Window(record.StartDate),
	}
	if record.UnitHours > 0 {
		b.RemainingDays = remaining / record.UnitHours
		b.RemainingHoursPart = remaining % record.UnitHours
	}
	return b
}

// ValidateUsage checks that requestedHours can be taken as of today.
//
// Returns:
//   - the balance the decision was made against
//   - InputError (ErrInvalidHours) if requestedHours is not positive
//   - InsufficientBalanceError if requestedHours exceeds the remaining hours
func (c *Calculator) ValidateUsage(record generic.LedgerRecord, today generic.TimePoint, requestedHours int) (Balance, error) {
	if requestedHours <= 0 {
		return Balance{}, invalidHours(requestedHours)
	}
	balance := c.ComputeBalance(record, today)
	if requestedHours > balance.RemainingHours {
		return balance, &generic.InsufficientBalanceError{
			Requested: requestedHours,
			Remaining: balance.RemainingHours,
		}
	}
	return balance, nil
}
