package generic

// =============================================================================
// PERIOD - Inclusive range of calendar dates
// =============================================================================

// Period is the inclusive date range [Start, End].
//
// Examples:
//   - First year of employment: start date to the day before the first anniversary
//   - Calendar year 2025: Jan 1 - Dec 31
type Period struct {
	Start TimePoint
	End   TimePoint
}

// Ended returns true once t is past End.
func (p Period) Ended(t TimePoint) bool {
	return t.After(p.End)
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
