/*
Package generic provides the calendar and ledger primitives of the leave
tracker.

PURPOSE:
  Domain-agnostic pieces that the accrual engine in package timeoff is built
  on: calendar dates and whole-month arithmetic, quantities with a unit, the
  persisted ledger record, the Store contract, and the error taxonomy.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A quantity with a unit (e.g., 4 hours, 0.5 days)
  - Unit: hours or days

DESIGN PRINCIPLES:
  1. Calendar dates only: TimePoint never carries a time-of-day
  2. Precision: Amount uses decimal.Decimal so hour/day conversions are exact
  3. Append-only: the ledger only ever grows

SEE ALSO:
  - time.go: TimePoint, MonthsElapsed, Anniversary
  - ledger.go: LedgerRecord and UsageEntry
  - store.go: persistence contract
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with unit
// =============================================================================

type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const (
	UnitDays  Unit = "days"
	UnitHours Unit = "hours"
)

func NewAmountFromInt(value int, unit Unit) Amount {
	return Amount{Value: decimal.NewFromInt(int64(value)), Unit: unit}
}

func Hours(n int) Amount { return NewAmountFromInt(n, UnitHours) }

func (a Amount) IsNegative() bool { return a.Value.IsNegative() }

// ToDays converts an hour amount into days of unitHours each, rounded to two
// places. Day amounts are returned unchanged.
func (a Amount) ToDays(unitHours int) Amount {
	if a.Unit == UnitDays || unitHours <= 0 {
		return a
	}
	days := a.Value.DivRound(decimal.NewFromInt(int64(unitHours)), 2)
	return Amount{Value: days, Unit: UnitDays}
}

func (a Amount) String() string {
	return a.Value.String() + " " + string(a.Unit)
}
