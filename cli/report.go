package cli

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/warp/leave-tracker/generic"
	"github.com/warp/leave-tracker/timeoff"
)

const helpText = `
Usage: vacation <command>

Commands:
  init   [YYYY-MM-DD]          Initialize the ledger with your employment start date.
  add    [YYYY-MM-DD] [hours]  Record leave you have used.
  status                       Show accrued, used and remaining leave.
  help                         Show this help.

Missing arguments are asked for interactively.
`

// writeStatus prints the balance report.
func writeStatus(w io.Writer, b timeoff.Balance) {
	fmt.Fprintln(w, "[Leave status]")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Start date:      %s\n", b.StartDate)
	fmt.Fprintf(w, "Monthly leave:   %d days (%d hours)\n", b.AccruedDays, b.AccruedHours)
	fmt.Fprintf(w, "Used leave:      %d hours\n", b.UsedHours)
	fmt.Fprintf(w, "Remaining leave: %s\n", formatRemaining(b))
	if b.Vested() {
		fmt.Fprintf(w, "Monthly accrual complete since %s.\n", b.AccrualWindow.End.AddDays(1))
	} else {
		fmt.Fprintf(w, "Monthly accrual continues until %s.\n", b.AccrualWindow.End)
	}
}

// formatRemaining renders "0 days 4 hours (4 hours, 0.5 days)".
func formatRemaining(b timeoff.Balance) string {
	return fmt.Sprintf("%d days %d hours (%d hours, %s)",
		b.RemainingDays, b.RemainingHoursPart, b.RemainingHours, b.RemainingInDays())
}

// fail prints the user-facing message for err and picks the exit code.
func (a *App) fail(err error) int {
	if generic.IsClientError(err) {
		a.Logger.Debug("command rejected", zap.Error(err))
		fmt.Fprintln(a.Out, clientMessage(err))
		return ExitOK
	}

	a.Logger.Error("command failed", zap.Error(err), zap.Bool("storage", generic.IsStorageError(err)))
	if generic.IsStorageError(err) {
		fmt.Fprintf(a.Out, "Cannot access the leave ledger: %v\n", err)
	} else {
		fmt.Fprintf(a.Out, "Error: %v\n", err)
	}
	return ExitFailure
}

func clientMessage(err error) string {
	var short *generic.InsufficientBalanceError
	switch {
	case errors.As(err, &short):
		return fmt.Sprintf("Cannot use %d hours. Remaining leave is %d hours.", short.Requested, short.Remaining)
	case errors.Is(err, generic.ErrAlreadyInitialized):
		return "A leave ledger already exists."
	case errors.Is(err, generic.ErrNotInitialized):
		return `No leave ledger found. Run "vacation init" first.`
	case errors.Is(err, generic.ErrInvalidDateFormat):
		return "Invalid date. Please use the YYYY-MM-DD format."
	case errors.Is(err, generic.ErrInvalidHours):
		return "Invalid hours. Please enter a positive whole number."
	default:
		return err.Error()
	}
}
