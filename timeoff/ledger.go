/*
ledger.go - Leave ledger operations

PURPOSE:
  Connects a generic.Store to the Calculator. Every operation loads the
  record fresh, runs the pure engine, and only then writes.

OPERATIONS:
  Initialize:  create the record (fails with ErrAlreadyInitialized)
  RecordUsage: validate against today's balance, then append
  Status:      compute today's balance

INVARIANT:
  A rejected usage request never reaches the Store, so the persisted usage
  list is unchanged after any failed RecordUsage.

EXAMPLE:
  ledger := timeoff.NewLeaveLedger(store, logger)

  _, err := ledger.Initialize(ctx, timeoff.InitRequest{StartDate: start, UnitHours: 8})
  balance, err := ledger.RecordUsage(ctx, timeoff.UsageRequest{Date: d, Hours: 4}, generic.Today())
  var short *generic.InsufficientBalanceError
  if errors.As(err, &short) {
      fmt.Printf("%d hours remaining\n", short.Remaining)
  }

SEE ALSO:
  - balance.go: Calculator
  - generic/store.go: Store contract
*/
package timeoff

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/warp/leave-tracker/generic"
)

// =============================================================================
// LEAVE LEDGER
// =============================================================================

type LeaveLedger struct {
	store  generic.Store
	calc   *Calculator
	logger *zap.Logger
}

// NewLeaveLedger wires store to the monthly leave Calculator.
// A nil logger disables logging.
func NewLeaveLedger(store generic.Store, logger *zap.Logger) *LeaveLedger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeaveLedger{
		store:  store,
		calc:   NewCalculator(),
		logger: logger.Named("ledger"),
	}
}

// Location is where the underlying store keeps the ledger.
func (l *LeaveLedger) Location() string {
	return l.store.Location()
}

// Initialized reports whether the store already holds a ledger.
func (l *LeaveLedger) Initialized(ctx context.Context) (bool, error) {
	return l.store.Exists(ctx)
}

// Initialize creates the ledger with an empty usage list.
func (l *LeaveLedger) Initialize(ctx context.Context, req InitRequest) (generic.LedgerRecord, error) {
	exists, err := l.store.Exists(ctx)
	if err != nil {
		return generic.LedgerRecord{}, err
	}
	if exists {
		return generic.LedgerRecord{}, generic.ErrAlreadyInitialized
	}

	unitHours := req.UnitHours
	if unitHours <= 0 {
		unitHours = generic.DefaultUnitHours
	}
	record := generic.NewLedgerRecord(req.StartDate, unitHours)
	if err := l.store.Create(ctx, record); err != nil {
		return generic.LedgerRecord{}, err
	}

	l.logger.Debug("ledger initialized",
		zap.Stringer("start_date", record.StartDate),
		zap.Int("unit_hours", record.UnitHours),
		zap.String("location", l.store.Location()))
	return record, nil
}

// RecordUsage appends req if it fits in the balance as of today. The
// returned Balance already includes the new entry on success, and is the
// pre-request balance on InsufficientBalanceError.
func (l *LeaveLedger) RecordUsage(ctx context.Context, req UsageRequest, today generic.TimePoint) (Balance, error) {
	record, err := l.store.Load(ctx)
	if err != nil {
		return Balance{}, err
	}

	balance, err := l.calc.ValidateUsage(record, today, req.Hours)
	if err != nil {
		l.logger.Debug("usage rejected",
			zap.Stringer("date", req.Date),
			zap.Int("hours", req.Hours),
			zap.Int("remaining_hours", balance.RemainingHours),
			zap.Error(err))
		return balance, err
	}

	entry := req.Entry()
	if err := l.store.AppendUsage(ctx, entry); err != nil {
		return balance, fmt.Errorf("append usage: %w", err)
	}

	l.logger.Debug("usage recorded",
		zap.Stringer("date", entry.Date),
		zap.Int("hours", entry.Hours))
	return l.calc.ComputeBalance(record.WithUsage(entry), today), nil
}

// Status computes the balance as of today.
func (l *LeaveLedger) Status(ctx context.Context, today generic.TimePoint) (Balance, error) {
	record, err := l.store.Load(ctx)
	if err != nil {
		return Balance{}, err
	}
	balance := l.calc.ComputeBalance(record, today)
	l.logger.Debug("balance computed",
		zap.Stringer("as_of", today),
		zap.Int("accrued_days", balance.AccruedDays),
		zap.Int("used_hours", balance.UsedHours),
		zap.Int("remaining_hours", balance.RemainingHours),
		zap.Stringer("accrual_window", balance.AccrualWindow))
	return balance, nil
}
