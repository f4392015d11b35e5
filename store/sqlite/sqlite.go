/*
Package sqlite provides a SQLite-backed implementation of generic.Store.

PURPOSE:
  Alternative to the JSON file store for users who want the ledger in a
  database file. Holds exactly the same record: one ledger row and an
  append-only list of usage entries.

APPEND-ONLY ENFORCEMENT:
  - The ledger table accepts a single row (CHECK id = 1)
  - No UPDATE or DELETE statements exist in this package
  - usage_entries.seq (AUTOINCREMENT) preserves insertion order

KEY TABLES:
  ledger:        join_date, day_hours
  usage_entries: used_on, hours, uuid id

MIGRATION:
  Versioned SQL files under migrations/ are embedded and applied with
  golang-migrate on New(). migrate.ErrNoChange is not an error.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) and foreign keys on.

USAGE:
  store, err := sqlite.New("./vacation.db", logger)
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  ledger := timeoff.NewLeaveLedger(store, logger)

SEE ALSO:
  - generic/store.go: Interface definition
  - store/file: JSON document store
  - generic/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/warp/leave-tracker/generic"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const ledgerID = 1

// Store implements generic.Store using SQLite.
type Store struct {
	db     *sql.DB
	path   string
	mu     sync.RWMutex
	logger *zap.Logger
}

var _ generic.Store = (*Store)(nil)

// New opens (or creates) the database at dbPath and migrates it.
// Use ":memory:" for an in-memory database.
func New(dbPath string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, &generic.StorageError{Op: "open", Path: dbPath, Err: err}
	}
	// One connection keeps ":memory:" databases alive across calls and
	// serializes writers.
	db.SetMaxOpenConns(1)

	store := &Store{db: db, path: dbPath, logger: logger.Named("sqlite_store")}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, &generic.StorageError{Op: "migrate", Path: dbPath, Err: err}
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Location() string { return s.path }

// migrate applies the embedded migrations. The migrate instance is not
// closed: closing it would close s.db as well.
func (s *Store) migrate() error {
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	version, _, _ := m.Version()
	s.logger.Debug("schema migrated", zap.String("path", s.path), zap.Uint("version", version))
	return nil
}

// =============================================================================
// STORE INTERFACE
// =============================================================================

func (s *Store) Exists(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exists(ctx, s.db)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) exists(ctx context.Context, q queryer) (bool, error) {
	var n int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM ledger WHERE id = ?`, ledgerID).Scan(&n); err != nil {
		return false, &generic.StorageError{Op: "query ledger", Path: s.path, Err: err}
	}
	return n > 0, nil
}

func (s *Store) Create(ctx context.Context, record generic.LedgerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		exists, err := s.exists(ctx, tx)
		if err != nil {
			return err
		}
		if exists {
			return generic.ErrAlreadyInitialized
		}

		now := time.Now().UTC().Format(time.RFC3339)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ledger (id, join_date, day_hours, created_at) VALUES (?, ?, ?, ?)`,
			ledgerID, record.StartDate.String(), record.UnitHours, now,
		); err != nil {
			return &generic.StorageError{Op: "insert ledger", Path: s.path, Err: err}
		}
		for _, u := range record.Usage {
			if err := s.insertUsage(ctx, tx, u); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) Load(ctx context.Context) (generic.LedgerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var joinDate string
	var dayHours int
	err := s.db.QueryRowContext(ctx,
		`SELECT join_date, day_hours FROM ledger WHERE id = ?`, ledgerID,
	).Scan(&joinDate, &dayHours)
	if errors.Is(err, sql.ErrNoRows) {
		return generic.LedgerRecord{}, generic.ErrNotInitialized
	}
	if err != nil {
		return generic.LedgerRecord{}, &generic.StorageError{Op: "query ledger", Path: s.path, Err: err}
	}

	start, err := generic.ParseDate(joinDate)
	if err != nil {
		return generic.LedgerRecord{}, &generic.StorageError{Op: "decode ledger", Path: s.path,
			Err: fmt.Errorf("%w: join_date: %v", generic.ErrInvalidRecord, err)}
	}
	record := generic.NewLedgerRecord(start, dayHours)

	rows, err := s.db.QueryContext(ctx,
		`SELECT used_on, hours FROM usage_entries WHERE ledger_id = ? ORDER BY seq`, ledgerID)
	if err != nil {
		return generic.LedgerRecord{}, &generic.StorageError{Op: "query usage", Path: s.path, Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var usedOn string
		var hours int
		if err := rows.Scan(&usedOn, &hours); err != nil {
			return generic.LedgerRecord{}, &generic.StorageError{Op: "scan usage", Path: s.path, Err: err}
		}
		d, err := generic.ParseDate(usedOn)
		if err != nil {
			return generic.LedgerRecord{}, &generic.StorageError{Op: "decode usage", Path: s.path,
				Err: fmt.Errorf("%w: used_on: %v", generic.ErrInvalidRecord, err)}
		}
		record.Usage = append(record.Usage, generic.UsageEntry{Date: d, Hours: hours})
	}
	if err := rows.Err(); err != nil {
		return generic.LedgerRecord{}, &generic.StorageError{Op: "query usage", Path: s.path, Err: err}
	}

	if err := record.Validate(); err != nil {
		return generic.LedgerRecord{}, &generic.StorageError{Op: "validate", Path: s.path, Err: err}
	}
	return record, nil
}

// AppendUsage inserts one entry. Append-only.
func (s *Store) AppendUsage(ctx context.Context, entry generic.UsageEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		exists, err := s.exists(ctx, tx)
		if err != nil {
			return err
		}
		if !exists {
			return generic.ErrNotInitialized
		}
		return s.insertUsage(ctx, tx, entry)
	})
}

func (s *Store) insertUsage(ctx context.Context, tx *sql.Tx, entry generic.UsageEntry) error {
	id := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO usage_entries (id, ledger_id, used_on, hours, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, ledgerID, entry.Date.String(), entry.Hours, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return &generic.StorageError{Op: "insert usage", Path: s.path, Err: err}
	}
	s.logger.Debug("usage inserted", zap.String("id", id), zap.Stringer("date", entry.Date), zap.Int("hours", entry.Hours))
	return nil
}

// withTx runs fn in a transaction, rolling back if fn returns an error.
func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &generic.StorageError{Op: "begin", Path: s.path, Err: err}
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return &generic.StorageError{Op: "commit", Path: s.path, Err: err}
	}
	return nil
}
