package timeoff

import (
	"strconv"
	"strings"

	"github.com/warp/leave-tracker/generic"
)

// =============================================================================
// REQUESTS - Fully-formed inputs handed to the LeaveLedger
// =============================================================================

// InitRequest creates a new ledger.
type InitRequest struct {
	StartDate generic.TimePoint
	UnitHours int
}

// UsageRequest records leave taken on Date.
type UsageRequest struct {
	Date  generic.TimePoint
	Hours int
}

// ParseInitRequest builds an InitRequest from raw user input.
// A non-positive unitHours falls back to generic.DefaultUnitHours.
func ParseInitRequest(startDate string, unitHours int) (InitRequest, error) {
	start, err := generic.ParseDate(strings.TrimSpace(startDate))
	if err != nil {
		return InitRequest{}, err
	}
	if unitHours <= 0 {
		unitHours = generic.DefaultUnitHours
	}
	return InitRequest{StartDate: start, UnitHours: unitHours}, nil
}

// ParseUsageRequest builds a UsageRequest from raw user input. The date is
// checked first so a bad date is reported even when hours are also bad.
func ParseUsageRequest(date, hours string) (UsageRequest, error) {
	d, err := generic.ParseDate(strings.TrimSpace(date))
	if err != nil {
		return UsageRequest{}, err
	}
	h, err := ParseHours(hours)
	if err != nil {
		return UsageRequest{}, err
	}
	return UsageRequest{Date: d, Hours: h}, nil
}

// ParseHours accepts a strictly positive base-10 integer. "4h", "1.5",
// "0" and "-2" are all rejected.
func ParseHours(s string) (int, error) {
	s = strings.TrimSpace(s)
	h, err := strconv.Atoi(s)
	if err != nil || h <= 0 {
		return 0, &generic.InputError{Field: "hours", Value: s, Kind: generic.ErrInvalidHours}
	}
	return h, nil
}

// Entry converts the request into the ledger entry to persist.
func (r UsageRequest) Entry() generic.UsageEntry {
	return generic.UsageEntry{Date: r.Date, Hours: r.Hours}
}

func invalidHours(h int) error {
	return &generic.InputError{Field: "hours", Value: strconv.Itoa(h), Kind: generic.ErrInvalidHours}
}
