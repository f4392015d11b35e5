/*
Package file provides the default Store: one human-readable JSON document.

DOCUMENT FORMAT:
  {
    "join_date": "2025-05-20",
    "day_hours": 8,
    "used_vacations": [
      { "date": "2025-06-02", "hours": 8 },
      { "date": "2025-07-01", "hours": 4 }
    ]
  }

  Dates are YYYY-MM-DD strings and hours are JSON integers. Entries keep
  insertion order.

WRITES:
  Every write replaces the whole document through a temp file in the same
  directory followed by rename, so a crash mid-write leaves either the old
  or the new ledger, never a truncated one.

USAGE:
  store := file.New("./vacation.json", logger)
  ledger := timeoff.NewLeaveLedger(store, logger)

SEE ALSO:
  - generic/store.go: Store contract
  - store/sqlite: database-backed alternative
*/
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/warp/leave-tracker/generic"
)

// Store keeps the ledger in a JSON file at Path.
type Store struct {
	path   string
	logger *zap.Logger
}

var _ generic.Store = (*Store)(nil)

// New returns a Store for path. The file is not touched until first use.
func New(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger.Named("file_store")}
}

func (s *Store) Location() string {
	if abs, err := filepath.Abs(s.path); err == nil {
		return abs
	}
	return s.path
}

func (s *Store) Exists(_ context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, &generic.StorageError{Op: "stat", Path: s.path, Err: err}
	}
}

func (s *Store) Create(ctx context.Context, record generic.LedgerRecord) error {
	exists, err := s.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return generic.ErrAlreadyInitialized
	}
	return s.write(record)
}

func (s *Store) Load(_ context.Context) (generic.LedgerRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return generic.LedgerRecord{}, generic.ErrNotInitialized
	}
	if err != nil {
		return generic.LedgerRecord{}, &generic.StorageError{Op: "read", Path: s.path, Err: err}
	}

	record, err := Decode(data)
	if err != nil {
		return generic.LedgerRecord{}, &generic.StorageError{Op: "decode", Path: s.path, Err: err}
	}
	s.logger.Debug("ledger loaded", zap.String("path", s.path), zap.Int("entries", len(record.Usage)))
	return record, nil
}

func (s *Store) AppendUsage(ctx context.Context, entry generic.UsageEntry) error {
	record, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return s.write(record.WithUsage(entry))
}

func (s *Store) write(record generic.LedgerRecord) error {
	data, err := Encode(record)
	if err != nil {
		return &generic.StorageError{Op: "encode", Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &generic.StorageError{Op: "mkdir", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &generic.StorageError{Op: "write", Path: s.path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &generic.StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &generic.StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return &generic.StorageError{Op: "chmod", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return &generic.StorageError{Op: "rename", Path: s.path, Err: err}
	}

	s.logger.Debug("ledger written", zap.String("path", s.path), zap.Int("entries", len(record.Usage)))
	return nil
}

// =============================================================================
// JSON DOCUMENT
// =============================================================================

type document struct {
	JoinDate      string          `json:"join_date"`
	DayHours      int             `json:"day_hours"`
	UsedVacations []usageDocument `json:"used_vacations"`
}

type usageDocument struct {
	Date  string `json:"date"`
	Hours int    `json:"hours"`
}

// Encode renders record as the indented ledger document.
func Encode(record generic.LedgerRecord) ([]byte, error) {
	doc := document{
		JoinDate:      record.StartDate.String(),
		DayHours:      record.UnitHours,
		UsedVacations: make([]usageDocument, 0, len(record.Usage)),
	}
	for _, u := range record.Usage {
		doc.UsedVacations = append(doc.UsedVacations, usageDocument{Date: u.Date.String(), Hours: u.Hours})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses a ledger document and checks the record invariants.
func Decode(data []byte) (generic.LedgerRecord, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return generic.LedgerRecord{}, fmt.Errorf("%w: %v", generic.ErrInvalidRecord, err)
	}

	start, err := generic.ParseDate(doc.JoinDate)
	if err != nil {
		return generic.LedgerRecord{}, fmt.Errorf("%w: join_date: %v", generic.ErrInvalidRecord, err)
	}
	record := generic.NewLedgerRecord(start, doc.DayHours)
	for i, u := range doc.UsedVacations {
		d, err := generic.ParseDate(u.Date)
		if err != nil {
			return generic.LedgerRecord{}, fmt.Errorf("%w: used_vacations[%d].date: %v", generic.ErrInvalidRecord, i, err)
		}
		record.Usage = append(record.Usage, generic.UsageEntry{Date: d, Hours: u.Hours})
	}

	if err := record.Validate(); err != nil {
		return generic.LedgerRecord{}, err
	}
	return record, nil
}
