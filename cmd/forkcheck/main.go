// Package main provides the entry point for the forkcheck CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gorewood/forkcheck/internal/config"
	"github.com/gorewood/forkcheck/internal/envfile"
	"github.com/gorewood/forkcheck/internal/git"
	"github.com/gorewood/forkcheck/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// flagValue reads a persistent flag from the command hierarchy.
func flagValue(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// isJSONMode reads the --json persistent flag.
func isJSONMode(cmd *cobra.Command) bool {
	return flagValue(cmd, "json") == "true"
}

// useColor resolves --color against the command's output writer.
func useColor(cmd *cobra.Command) bool {
	return output.ResolveColorMode(flagValue(cmd, "color"), output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter builds the Printer every command writes through.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// newLogger returns a development logger on stderr with --debug, otherwise
// a no-op logger.
func newLogger(cmd *cobra.Command) *zap.Logger {
	if flagValue(cmd, "debug") != "true" {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(cmd.ErrOrStderr()), zapcore.DebugLevel)
	return zap.New(core, zap.Development())
}

// loadConfig resolves the configuration for the working directory. Failures
// are user errors.
func loadConfig(cmd *cobra.Command, logger *zap.Logger) (*config.Loaded, error) {
	loaded, err := config.Load(config.LoadOptions{
		ExplicitPath: flagValue(cmd, "config"),
		Logger:       logger,
	})
	if err != nil {
		return nil, output.NewUserErrorWithCause(fmt.Sprintf("invalid configuration: %v", err), err)
	}
	return loaded, nil
}

// newSource builds the git.Source selected by --backend.
func newSource(cmd *cobra.Command, logger *zap.Logger) (git.Source, error) {
	switch backend := flagValue(cmd, "backend"); backend {
	case "", git.BackendExec:
		return git.NewCLI(git.NewRunner("", logger)), nil
	case git.BackendGoGit:
		return git.NewRepository(""), nil
	default:
		return nil, output.NewUserError(fmt.Sprintf("unknown backend %q (want %s or %s)", backend, git.BackendExec, git.BackendGoGit))
	}
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(handleError),
	)
	return output.GetExitCode(err)
}

// handleError prints errors the command has not already shown; commands
// render their own failures through the Printer.
func handleError(w io.Writer, styles fang.Styles, err error) {
	if output.IsReported(err) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the forkcheck CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forkcheck",
		Short: "Check a working copy against the fork → pull request workflow",
		Long: `forkcheck - inspect your git setup and get contribution guidance.

Running forkcheck with no arguments prints a report:
  - Repository root, current branch, remotes, recent commits, working tree
  - Whether the origin (your fork) and upstream remotes are configured
  - Where each watched branch lives (checked out, remote fork, local, missing)
  - The next steps for contributing from the current branch

Settings come from --config, .forkcheck.yml in the repository, or the
global config.yml. All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runReport,
	}

	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		loadEnvFiles(c)
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, never")
	cmd.PersistentFlags().String("config", "", "Path to a config file")
	cmd.PersistentFlags().String("backend", git.BackendExec, "Repository reader: exec (git CLI) or go-git")
	cmd.PersistentFlags().Bool("debug", false, "Trace git invocations and config resolution to stderr")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <config dir>/env
//
// An unreadable file is reported as a warning and the rest still load.
func loadEnvFiles(cmd *cobra.Command) {
	paths := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	if _, err := envfile.LoadAll(paths...); err != nil {
		printer := newPrinter(cmd)
		for _, line := range strings.Split(err.Error(), "\n") {
			printer.Warn("%s", line)
		}
	}
}
