// Package store provides Store implementations.
package store

import (
	"context"
	"sync"

	"github.com/warp/leave-tracker/generic"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu     sync.RWMutex
	record *generic.LedgerRecord
}

func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWith returns a store already holding record.
func NewMemoryWith(record generic.LedgerRecord) *Memory {
	r := cloneRecord(record)
	return &Memory{record: &r}
}

func (m *Memory) Exists(_ context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.record != nil, nil
}

func (m *Memory) Create(_ context.Context, record generic.LedgerRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.record != nil {
		return generic.ErrAlreadyInitialized
	}
	r := cloneRecord(record)
	m.record = &r
	return nil
}

// Load returns a copy so callers cannot mutate stored usage.
func (m *Memory) Load(_ context.Context) (generic.LedgerRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.record == nil {
		return generic.LedgerRecord{}, generic.ErrNotInitialized
	}
	return cloneRecord(*m.record), nil
}

// AppendUsage adds a single entry. Append-only.
func (m *Memory) AppendUsage(_ context.Context, entry generic.UsageEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.record == nil {
		return generic.ErrNotInitialized
	}
	m.record.Usage = append(m.record.Usage, entry)
	return nil
}

func (m *Memory) Location() string { return "memory" }

func cloneRecord(r generic.LedgerRecord) generic.LedgerRecord {
	usage := make([]generic.UsageEntry, len(r.Usage))
	copy(usage, r.Usage)
	r.Usage = usage
	return r
}
