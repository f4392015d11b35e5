/*
main.go - vacation command entry point

PURPOSE:
  Tracks first-year monthly leave from the command line.

STARTUP SEQUENCE:
  1. Load configuration (.env, vacation.yaml, VACATION_* env)
  2. Build the zap logger
  3. Open the configured ledger store, only for init, add and status
  4. Dispatch the positional command

CONFIGURATION:
  VACATION_STORAGE_BACKEND   file (default) or sqlite
  VACATION_STORAGE_PATH      ledger path (default ./vacation.json or ./vacation.db)
  VACATION_LEDGER_UNIT_HOURS hours per leave day for new ledgers (default 8)
  VACATION_LOG_LEVEL         debug, info, warn (default), error

EXAMPLES:
  vacation init 2025-05-20
  vacation add 2025-07-01 4
  vacation status

SEE ALSO:
  - cli/app.go: command dispatch
  - config/config.go: configuration keys
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/warp/leave-tracker/cli"
	"github.com/warp/leave-tracker/config"
	"github.com/warp/leave-tracker/generic"
	"github.com/warp/leave-tracker/logging"
	"github.com/warp/leave-tracker/store/file"
	"github.com/warp/leave-tracker/store/sqlite"
	"github.com/warp/leave-tracker/timeoff"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return cli.ExitFailure
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return cli.ExitFailure
	}

	logger, closeLog, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return cli.ExitFailure
	}
	defer closeLog()
	defer logger.Sync()

	app := &cli.App{
		In:        stdin,
		Out:       stdout,
		Logger:    logger,
		UnitHours: cfg.Ledger.UnitHours,
	}

	if cli.NeedsLedger(args) {
		store, closeStore, err := openStore(cfg.Storage, logger)
		if err != nil {
			logger.Error("failed to open ledger store", zap.Error(err),
				zap.String("backend", cfg.Storage.Backend), zap.String("path", cfg.Storage.Path))
			fmt.Fprintf(stdout, "Cannot access the leave ledger: %v\n", err)
			return cli.ExitFailure
		}
		defer closeStore()
		app.Ledger = timeoff.NewLeaveLedger(store, logger)
	}

	return app.Run(context.Background(), args)
}

func openStore(cfg config.StorageConfig, logger *zap.Logger) (generic.Store, func() error, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := sqlite.New(cfg.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return file.New(cfg.Path, logger), func() error { return nil }, nil
	}
}
