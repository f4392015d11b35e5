/*
Package cli is the command dispatcher of the vacation tool.

PURPOSE:
  Maps the single positional command to a LeaveLedger operation, collects
  the inputs that operation needs, and turns results and errors into text
  on stdout.

COMMANDS:
  init   [YYYY-MM-DD]          create the ledger with the employment start date
  add    [YYYY-MM-DD] [hours]  record leave usage
  status                       print the current balance
  help                         print usage (also for unknown or missing commands)

INPUT COLLECTION:
  Arguments are used when given; each missing field is prompted for on the
  input stream. All fields are gathered before the ledger is called, so
  the engine never waits on input.

EXIT CODES:
  ExitOK for success, help, and the expected outcomes a user can act on
  (already initialized, not initialized, bad date, bad hours, insufficient
  balance). ExitFailure when the ledger cannot be read or written.

SEE ALSO:
  - timeoff/ledger.go: operations invoked here
  - report.go: user-facing text
*/
package cli

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/warp/leave-tracker/generic"
	"github.com/warp/leave-tracker/timeoff"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

// App runs one command against a LeaveLedger.
type App struct {
	Ledger    *timeoff.LeaveLedger
	In        io.Reader
	Out       io.Writer
	Logger    *zap.Logger
	Clock     func() generic.TimePoint // "today"; defaults to generic.Today
	UnitHours int                      // hours per day for new ledgers
}

type command struct {
	name   string
	ledger bool // reads or writes the ledger
	run    func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"init":   {name: "init", ledger: true, run: (*App).runInit},
	"add":    {name: "add", ledger: true, run: (*App).runAdd},
	"status": {name: "status", ledger: true, run: (*App).runStatus},
	"help":   {name: "help", run: (*App).runHelp},
}

// NeedsLedger reports whether args dispatch to a command that touches the
// ledger. Callers open the store only when it does; App.Ledger may be nil
// otherwise.
func NeedsLedger(args []string) bool {
	if len(args) == 0 {
		return false
	}
	return commands[args[0]].ledger
}

// Run dispatches args[0] and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if a.Logger == nil {
		a.Logger = zap.NewNop()
	}
	if a.Clock == nil {
		a.Clock = generic.Today
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	cmd, ok := commands[name]
	if !ok {
		cmd = commands["help"]
	}

	a.Logger.Debug("dispatch", zap.String("command", cmd.name), zap.Strings("args", args))
	if err := cmd.run(a, ctx, rest(args)); err != nil {
		return a.fail(err)
	}
	return ExitOK
}

func rest(args []string) []string {
	if len(args) <= 1 {
		return nil
	}
	return args[1:]
}
