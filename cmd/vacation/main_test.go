package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST SETUP
// =============================================================================

// inTempDir runs the test from an empty working directory with no user
// config and no VACATION_* overrides.
func inTempDir(t *testing.T) string {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"STORAGE_BACKEND", "STORAGE_PATH", "LEDGER_UNIT_HOURS", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT"} {
		t.Setenv("VACATION_"+key, "")
	}
	return dir
}

func runCommand(input string, args ...string) (stdout, stderr string, code int) {
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(input), &out, &errOut)
	return out.String(), errOut.String(), code
}

// =============================================================================
// FILE BACKEND
// =============================================================================

func TestRun_InitAddStatus(t *testing.T) {
	dir := inTempDir(t)

	out, _, code := runCommand("", "init", "2024-01-01")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Leave ledger initialized.")
	assert.FileExists(t, filepath.Join(dir, "vacation.json"))

	// Past the first anniversary, so 88 hours have accrued whatever today is.
	out, _, code = runCommand("", "add", "2025-03-03", "8")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Remaining: 10 days 0 hours (80 hours, 10 days)")

	out, _, code = runCommand("", "status")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Start date:      2024-01-01")
	assert.Contains(t, out, "Monthly leave:   11 days (88 hours)")
	assert.Contains(t, out, "Used leave:      8 hours")

	out, _, code = runCommand("", "init", "2025-05-20")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "A leave ledger already exists.")
}

func TestRun_CorruptLedger(t *testing.T) {
	// GIVEN: A corrupt vacation.json in the working directory
	// WHEN: Running help, then status
	// THEN: help still succeeds; status reports a storage failure

	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vacation.json"), []byte("{join_date:"), 0o644))

	out, errOut, code := runCommand("", "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage: vacation <command>")
	assert.NotContains(t, errOut, "Failed to load configuration")

	out, errOut, code = runCommand("", "status")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Cannot access the leave ledger")
	assert.NotContains(t, errOut, "Failed to load configuration")
}

func TestRun_ConfigFileBesideLedger(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vacation.json"), []byte(`{"join_date": "2025-05-20", "day_hours": 8, "used_vacations": []}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vacation.yaml"), []byte("storage:\n  path: ledger/custom.json\n"), 0o644))

	// The configured path is empty, so init succeeds even though vacation.json exists.
	out, _, code := runCommand("", "init", "2025-05-20")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Leave ledger initialized.")
	assert.FileExists(t, filepath.Join(dir, "ledger", "custom.json"))
}

func TestRun_HelpDoesNotTouchLedger(t *testing.T) {
	dir := inTempDir(t)

	for _, args := range [][]string{nil, {"help"}, {"unknown"}} {
		_, _, code := runCommand("", args...)
		assert.Equal(t, 0, code)
	}
	assert.NoFileExists(t, filepath.Join(dir, "vacation.json"))
}

// =============================================================================
// SQLITE BACKEND
// =============================================================================

func TestRun_SQLiteBackend(t *testing.T) {
	dir := inTempDir(t)
	t.Setenv("VACATION_STORAGE_BACKEND", "sqlite")

	_, _, code := runCommand("", "help")
	assert.Equal(t, 0, code)
	assert.NoFileExists(t, filepath.Join(dir, "vacation.db"))

	out, _, code := runCommand("2024-01-01\n", "init")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Leave ledger initialized. Ledger: vacation.db")
	assert.FileExists(t, filepath.Join(dir, "vacation.db"))

	_, _, code = runCommand("", "add", "2025-03-03", "4")
	assert.Equal(t, 0, code)

	out, _, code = runCommand("", "status")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Used leave:      4 hours")
	assert.Contains(t, out, "Remaining leave: 10 days 4 hours (84 hours, 10.5 days)")
}

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

func TestRun_RejectsMemoryBackend(t *testing.T) {
	inTempDir(t)
	t.Setenv("VACATION_STORAGE_BACKEND", "memory")

	_, errOut, code := runCommand("", "status")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `invalid storage backend "memory"`)
}
