package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/forkcheck/internal/config"
	"github.com/gorewood/forkcheck/internal/output"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create forkcheck configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

// newConfigShowCmd prints the effective configuration and where it came from.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			logger := newLogger(cmd)
			defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable

			loaded, err := loadConfig(cmd, logger)
			if err != nil {
				printer.Error(err)
				return err
			}

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{
					"source": loaded.Source,
					"config": loaded.Config,
				})
			}

			data, err := loaded.Config.Marshal()
			if err != nil {
				sysErr := output.NewSystemErrorWithCause("encoding config", err)
				printer.Error(sysErr)
				return sysErr
			}
			printer.Print("# source: %s\n%s", loaded.Source, data)
			return nil
		},
	}
}

// newConfigInitCmd writes the default configuration to the project or global
// config file.
func newConfigInitCmd() *cobra.Command {
	var global, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the built-in defaults to .forkcheck.yml in the current directory,
or to the global config.yml with --global. Existing files are kept unless
--force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			path := config.ProjectFileName
			if global {
				path = config.GlobalPath()
				if path == "" {
					err := output.NewSystemError("cannot determine the global config directory")
					printer.Error(err)
					return err
				}
			}

			if err := config.Save(path, config.Default(), force); err != nil {
				var exitErr *output.ExitError
				if config.IsExist(err) {
					exitErr = output.NewUserErrorWithCause(fmt.Sprintf("%s already exists (use --force to overwrite)", path), err)
				} else {
					exitErr = output.NewSystemErrorWithCause(fmt.Sprintf("writing %s: %v", path, err), err)
				}
				printer.Error(exitErr)
				return exitErr
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			return printer.Success(map[string]any{
				"status":  "created",
				"path":    abs,
				"message": "Wrote " + abs,
			})
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Write the global config instead of .forkcheck.yml")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
