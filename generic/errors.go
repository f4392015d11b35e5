/*
errors.go - Centralized error types for the leave tracker

PURPOSE:
  All error kinds in one place. Stores, the accrual engine and the command
  dispatcher return these (possibly wrapped) so callers can branch with
  errors.Is / errors.As.

ERROR CATEGORIES:
  1. Lifecycle errors - ledger missing or already present
  2. Input errors - malformed date or hours
  3. Balance errors - usage exceeding the remaining balance
  4. Storage errors - unreadable, corrupt or unwritable ledger

SEE ALSO:
  - store.go: Store implementations return lifecycle and storage errors
  - timeoff/balance.go: ValidateUsage returns InsufficientBalanceError
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrAlreadyInitialized is returned when init runs against an existing ledger.
	ErrAlreadyInitialized = errors.New("ledger already initialized")

	// ErrNotInitialized is returned when a ledger is read before init.
	ErrNotInitialized = errors.New("ledger not initialized")

	// ErrInvalidDateFormat is returned for dates that are not YYYY-MM-DD
	// calendar dates.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidHours is returned when an hours value is not a positive integer.
	ErrInvalidHours = errors.New("invalid hours")

	// ErrInsufficientBalance is returned when usage exceeds the remaining balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidRecord is returned when a persisted record breaks a ledger invariant.
	ErrInvalidRecord = errors.New("invalid ledger record")

	// ErrStorage marks unexpected persistence failures.
	ErrStorage = errors.New("storage error")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InsufficientBalanceError reports how many hours were left when a usage
// request was rejected.
type InsufficientBalanceError struct {
	Requested int
	Remaining int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: requested %d hours, %d hours remaining",
		e.Requested, e.Remaining)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// InputError describes a rejected user-supplied value.
type InputError struct {
	Field string
	Value string
	Kind  error // ErrInvalidDateFormat or ErrInvalidHours
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Kind, e.Field, e.Value)
}

func (e *InputError) Unwrap() error {
	return e.Kind
}

// StorageError wraps an I/O or database failure with the operation and the
// ledger location it happened on.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes every StorageError match ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true for the expected outcomes a user can fix:
// lifecycle misuse, bad input, or not enough balance.
func IsClientError(err error) bool {
	return errors.Is(err, ErrAlreadyInitialized) ||
		errors.Is(err, ErrNotInitialized) ||
		errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidHours) ||
		errors.Is(err, ErrInsufficientBalance)
}

// IsStorageError returns true if the ledger could not be read or written.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage) || errors.Is(err, ErrInvalidRecord)
}
