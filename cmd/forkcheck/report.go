package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gorewood/forkcheck/internal/advisor"
	"github.com/gorewood/forkcheck/internal/output"
)

// runReport is the root command: it runs every advisor step and renders the
// report. Outside a repository it prints the failure and exits 1.
func runReport(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)
	logger := newLogger(cmd)
	defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable

	loaded, err := loadConfig(cmd, logger)
	if err != nil {
		printer.Error(err)
		return err
	}

	src, err := newSource(cmd, logger)
	if err != nil {
		printer.Error(err)
		return err
	}

	report, runErr := advisor.New(src, loaded.Config).Run(cmd.Context())
	if runErr != nil && !errors.Is(runErr, advisor.ErrNotRepository) {
		sysErr := output.NewSystemErrorWithCause("running checks", runErr)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		if runErr != nil {
			userErr := output.NewUserErrorWithCause(runErr.Error(), runErr)
			printer.Error(userErr)
			return userErr
		}
		if err := printer.WriteJSON(report); err != nil {
			return output.NewSystemErrorWithCause("writing report", err)
		}
		return nil
	}

	renderReport(printer, report)
	if runErr != nil {
		userErr := output.NewUserErrorWithCause("not in a git repository", runErr)
		userErr.Reported = true
		return userErr
	}
	return nil
}
