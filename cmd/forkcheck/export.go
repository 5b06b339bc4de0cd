package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorewood/forkcheck/internal/advisor"
	"github.com/gorewood/forkcheck/internal/export"
	"github.com/gorewood/forkcheck/internal/output"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var format, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the report as Markdown or JSON",
		Long: `Write the report as a Markdown document or JSON, to stdout or a file.

Examples:
  forkcheck export                         # Markdown to stdout
  forkcheck export --output setup-check.md # Markdown to a file
  forkcheck export --format json -o r.json # JSON to a file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			logger := newLogger(cmd)
			defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable

			report, err := collectReport(cmd, logger)
			if err != nil {
				printer.Error(err)
				return err
			}

			if outPath != "" {
				if err := export.WriteFile(report, format, outPath); err != nil {
					printer.Error(err)
					return err
				}
				return printer.Success(map[string]any{
					"status":  "written",
					"path":    outPath,
					"format":  format,
					"message": "Wrote " + outPath,
				})
			}

			data, err := export.Render(report, format)
			if err != nil {
				printer.Error(err)
				return err
			}
			printer.Print("%s", data)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", export.FormatMarkdownName, "Output format: markdown or json")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

// collectReport runs the advisor for export. Outside a repository it fails
// with a user error instead of exporting a partial report.
func collectReport(cmd *cobra.Command, logger *zap.Logger) (*advisor.Report, error) {
	loaded, err := loadConfig(cmd, logger)
	if err != nil {
		return nil, err
	}
	src, err := newSource(cmd, logger)
	if err != nil {
		return nil, err
	}

	report, err := advisor.New(src, loaded.Config).Run(cmd.Context())
	if errors.Is(err, advisor.ErrNotRepository) {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}
	if err != nil {
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("running checks: %v", err), err)
	}
	return report, nil
}
