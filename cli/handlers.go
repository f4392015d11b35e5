package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/warp/leave-tracker/generic"
	"github.com/warp/leave-tracker/timeoff"
)

const (
	promptStartDate = "Enter your employment start date (YYYY-MM-DD): "
	promptUsageDate = "Enter the date you took leave (YYYY-MM-DD): "
	promptHours     = "Enter the number of hours used: "
)

func (a *App) prompter() *prompter {
	return newPrompter(a.In, a.Out)
}

// =============================================================================
// INIT
// =============================================================================

func (a *App) runInit(ctx context.Context, args []string) error {
	exists, err := a.Ledger.Initialized(ctx)
	if err != nil {
		return err
	}
	if exists {
		return generic.ErrAlreadyInitialized
	}

	raw, err := a.prompter().field(args, 0, promptStartDate)
	if err != nil {
		return err
	}
	req, err := timeoff.ParseInitRequest(raw, a.UnitHours)
	if err != nil {
		return err
	}

	record, err := a.Ledger.Initialize(ctx, req)
	if err != nil {
		return err
	}
	a.Logger.Info("ledger initialized", zap.Stringer("start_date", record.StartDate))
	fmt.Fprintf(a.Out, "Leave ledger initialized. Ledger: %s\n", a.Ledger.Location())
	return nil
}

// =============================================================================
// ADD
// =============================================================================

func (a *App) runAdd(ctx context.Context, args []string) error {
	exists, err := a.Ledger.Initialized(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return generic.ErrNotInitialized
	}

	p := a.prompter()
	date, err := p.field(args, 0, promptUsageDate)
	if err != nil {
		return err
	}
	if _, err := generic.ParseDate(date); err != nil {
		return err
	}
	hours, err := p.field(args, 1, promptHours)
	if err != nil {
		return err
	}
	req, err := timeoff.ParseUsageRequest(date, hours)
	if err != nil {
		return err
	}

	balance, err := a.Ledger.RecordUsage(ctx, req, a.Clock())
	if err != nil {
		return err
	}
	a.Logger.Info("usage recorded", zap.Stringer("date", req.Date), zap.Int("hours", req.Hours))
	fmt.Fprintln(a.Out, "Leave usage recorded.")
	fmt.Fprintf(a.Out, "Remaining: %s\n", formatRemaining(balance))
	return nil
}

// =============================================================================
// STATUS
// =============================================================================

func (a *App) runStatus(ctx context.Context, _ []string) error {
	balance, err := a.Ledger.Status(ctx, a.Clock())
	if err != nil {
		return err
	}
	writeStatus(a.Out, balance)
	return nil
}

// =============================================================================
// HELP
// =============================================================================

func (a *App) runHelp(_ context.Context, _ []string) error {
	fmt.Fprint(a.Out, helpText)
	return nil
}
