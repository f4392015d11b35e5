/*
ledger.go - The persisted leave ledger

PURPOSE:
  LedgerRecord is the single piece of durable state: the employment start
  date, how many hours make one leave day, and every recorded usage in the
  order it was entered. Balances are never stored; they are recomputed from
  this record on every query.

CRITICAL INVARIANTS:
  1. StartDate is set once at initialization and never changes.
  2. UnitHours is a strictly positive integer.
  3. Usage is APPEND-ONLY: no edit, no delete, insertion order preserved.
  4. Every UsageEntry has positive Hours.

SEE ALSO:
  - store.go: persistence contract enforcing append-only writes
  - timeoff/balance.go: balance derivation from a record
*/
package generic

import "fmt"

// DefaultUnitHours is the number of hours in one leave day unless configured.
const DefaultUnitHours = 8

// UsageEntry records leave taken on one date.
type UsageEntry struct {
	Date  TimePoint
	Hours int
}

// LedgerRecord is the singleton persisted state of one user's ledger.
type LedgerRecord struct {
	StartDate TimePoint
	UnitHours int
	Usage     []UsageEntry
}

// NewLedgerRecord returns an empty ledger starting on start.
func NewLedgerRecord(start TimePoint, unitHours int) LedgerRecord {
	return LedgerRecord{StartDate: start, UnitHours: unitHours, Usage: []UsageEntry{}}
}

// UsedHours sums the hours of every usage entry.
func (r LedgerRecord) UsedHours() int {
	used := 0
	for _, u := range r.Usage {
		used += u.Hours
	}
	return used
}

// Validate checks the record invariants. Stores call it after loading so a
// hand-edited or corrupt ledger is reported instead of silently used.
func (r LedgerRecord) Validate() error {
	if r.StartDate.IsZero() {
		return fmt.Errorf("%w: missing start date", ErrInvalidRecord)
	}
	if r.UnitHours <= 0 {
		return fmt.Errorf("%w: unit hours must be positive, got %d", ErrInvalidRecord, r.UnitHours)
	}
	for i, u := range r.Usage {
		if u.Date.IsZero() {
			return fmt.Errorf("%w: usage entry %d has no date", ErrInvalidRecord, i)
		}
		if u.Hours <= 0 {
			return fmt.Errorf("%w: usage entry %d has non-positive hours %d", ErrInvalidRecord, i, u.Hours)
		}
	}
	return nil
}

// WithUsage returns a copy of r with entry appended. r is left untouched.
func (r LedgerRecord) WithUsage(entry UsageEntry) LedgerRecord {
	usage := make([]UsageEntry, len(r.Usage), len(r.Usage)+1)
	copy(usage, r.Usage)
	r.Usage = append(usage, entry)
	return r
}
