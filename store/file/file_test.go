package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/warp/leave-tracker/generic"
	"github.com/warp/leave-tracker/store/file"
)

func newTestStore(t *testing.T) (*file.Store, string) {
	path := filepath.Join(t.TempDir(), "vacation.json")
	return file.New(path, zaptest.NewLogger(t)), path
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	exists, err := s.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.Create(ctx, generic.NewLedgerRecord(generic.NewTimePoint(2025, time.May, 20), 8)))
	require.NoError(t, s.AppendUsage(ctx, generic.UsageEntry{Date: generic.NewTimePoint(2025, time.June, 2), Hours: 8}))
	require.NoError(t, s.AppendUsage(ctx, generic.UsageEntry{Date: generic.NewTimePoint(2025, time.July, 1), Hours: 4}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{
  "join_date": "2025-05-20",
  "day_hours": 8,
  "used_vacations": [
    {
      "date": "2025-06-02",
      "hours": 8
    },
    {
      "date": "2025-07-01",
      "hours": 4
    }
  ]
}
`, string(data))

	record, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, generic.NewTimePoint(2025, time.May, 20), record.StartDate)
	assert.Equal(t, 12, record.UsedHours())

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, s.Location())
}

func TestStore_EmptyUsageIsArray(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)
	require.NoError(t, s.Create(ctx, generic.NewLedgerRecord(generic.NewTimePoint(2025, time.May, 20), 8)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"used_vacations": []`)
}

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, generic.ErrNotInitialized)
	assert.ErrorIs(t, s.AppendUsage(ctx, generic.UsageEntry{Date: generic.NewTimePoint(2025, time.June, 2), Hours: 8}), generic.ErrNotInitialized)

	require.NoError(t, s.Create(ctx, generic.NewLedgerRecord(generic.NewTimePoint(2025, time.May, 20), 8)))
	err = s.Create(ctx, generic.NewLedgerRecord(generic.NewTimePoint(2024, time.January, 1), 8))
	assert.ErrorIs(t, err, generic.ErrAlreadyInitialized)

	record, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, generic.NewTimePoint(2025, time.May, 20), record.StartDate)
}

func TestStore_CreatesParentDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "vacation.json")
	s := file.New(path, nil)

	require.NoError(t, s.Create(ctx, generic.NewLedgerRecord(generic.NewTimePoint(2025, time.May, 20), 8)))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_CorruptLedger(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{join_date:"},
		{"bad join date", `{"join_date": "20/05/2025", "day_hours": 8, "used_vacations": []}`},
		{"bad usage date", `{"join_date": "2025-05-20", "day_hours": 8, "used_vacations": [{"date": "x", "hours": 8}]}`},
		{"zero day hours", `{"join_date": "2025-05-20", "day_hours": 0, "used_vacations": []}`},
		{"negative usage", `{"join_date": "2025-05-20", "day_hours": 8, "used_vacations": [{"date": "2025-06-02", "hours": -8}]}`},
		{"fractional hours", `{"join_date": "2025-05-20", "day_hours": 8, "used_vacations": [{"date": "2025-06-02", "hours": 1.5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := newTestStore(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := s.Load(ctx)
			require.Error(t, err)
			assert.True(t, generic.IsStorageError(err))
			assert.ErrorIs(t, err, generic.ErrInvalidRecord)
			assert.False(t, generic.IsClientError(err))

			// A corrupt ledger also blocks appends.
			err = s.AppendUsage(ctx, generic.UsageEntry{Date: generic.NewTimePoint(2025, time.June, 2), Hours: 1})
			assert.ErrorIs(t, err, generic.ErrStorage)
		})
	}
}

func TestDecode_MissingUsageList(t *testing.T) {
	record, err := file.Decode([]byte(`{"join_date": "2025-05-20", "day_hours": 8}`))
	require.NoError(t, err)
	assert.Empty(t, record.Usage)
	assert.Equal(t, 8, record.UnitHours)
}
