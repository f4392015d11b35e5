/*
store.go - Persistence interface for the leave ledger

PURPOSE:
  Defines the boundary between the accrual engine and durable state. The
  engine never touches files or databases; the LeaveLedger in package
  timeoff receives a Store and hands the loaded record to the engine.

APPEND-ONLY CONTRACT:
  - Create(): writes the record once, fails with ErrAlreadyInitialized after
  - AppendUsage(): the ONLY write after initialization
  - NO Update() or Delete() methods exist

CONCURRENCY:
  A ledger belongs to a single user driving one-shot commands. Stores do
  not coordinate between processes; two simultaneous "add" runs may lose
  one entry.

IMPLEMENTATIONS:
  - store/file: JSON document on disk (default)
  - store/sqlite: SQLite database with versioned migrations
  - generic/store: In-memory for tests

SEE ALSO:
  - ledger.go: LedgerRecord
  - timeoff/ledger.go: orchestration on top of Store
*/
package generic

import "context"

// Store persists one LedgerRecord.
type Store interface {
	// Exists reports whether a ledger has been initialized.
	Exists(ctx context.Context) (bool, error)

	// Create persists a new record. Returns ErrAlreadyInitialized if one
	// already exists; the existing record is never overwritten.
	Create(ctx context.Context, record LedgerRecord) error

	// Load returns the record. Returns ErrNotInitialized if none exists.
	Load(ctx context.Context) (LedgerRecord, error)

	// AppendUsage adds one entry at the end of the usage list.
	AppendUsage(ctx context.Context, entry UsageEntry) error

	// Location describes where the ledger lives, for user-facing messages.
	Location() string
}
