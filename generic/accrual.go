package generic

// =============================================================================
// ACCRUAL SCHEDULE - Interface for how leave accumulates
// =============================================================================

// AccrualSchedule derives accrued leave from the start date alone. It is a
// pure function of its arguments; nothing is recorded when leave accrues.
type AccrualSchedule interface {
	// AccruedDays returns the whole leave days earned from start up to and
	// including asOf.
	AccruedDays(start, asOf TimePoint) int

	// Window returns the inclusive period during which accrual still grows.
	// From the day after Window().End the accrued amount is fixed.
	Window(start TimePoint) Period
}
