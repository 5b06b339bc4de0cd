package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrGitNotFound is returned when the git executable is not on PATH.
var ErrGitNotFound = errors.New("git not found: ensure git is installed and in PATH")

// CommandError describes a git invocation that exited unsuccessfully.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	cmd := "git " + strings.Join(e.Args, " ")
	if e.Stderr != "" {
		return cmd + ": " + e.Stderr
	}
	return cmd + ": " + e.Err.Error()
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// InlineError renders a query failure the way it appears inside a report
// section: "Error: " followed by git's stderr, or the error text when git
// produced none.
func InlineError(err error) string {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Stderr != "" {
		return "Error: " + cmdErr.Stderr
	}
	return "Error: " + err.Error()
}

// Runner executes git commands in a fixed directory.
type Runner struct {
	dir    string
	binary string
	logger *zap.Logger
}

// NewRunner creates a Runner rooted at dir ("" means the process working
// directory). A nil logger disables tracing.
func NewRunner(dir string, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{dir: dir, binary: "git", logger: logger}
}

// Run executes git with the given arguments.
// It captures stdout and returns it as a trimmed string.
func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	r.logger.Debug("git",
		zap.Strings("args", args),
		zap.Duration("took", time.Since(start)),
		zap.Error(err))

	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", fmt.Errorf("%w (%w)", ErrGitNotFound, err)
		}
		return "", &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}
