package git

import (
	"context"
	"strconv"
)

// Source answers the repository queries behind each report section.
// Every call performs a fresh read; implementations never cache.
type Source interface {
	RepoRoot(ctx context.Context) (string, error)
	CurrentBranch(ctx context.Context) (string, error)
	Remotes(ctx context.Context) (string, error)
	RecentCommits(ctx context.Context, limit int) (string, error)
	Status(ctx context.Context) (string, error)
	Branches(ctx context.Context) (string, error)
}

// Backend names accepted by the --backend flag.
const (
	BackendExec  = "exec"
	BackendGoGit = "go-git"
)

// CLI is a Source that shells out to the git executable.
type CLI struct {
	runner *Runner
}

// NewCLI creates a CLI source backed by runner.
func NewCLI(runner *Runner) *CLI {
	return &CLI{runner: runner}
}

var _ Source = (*CLI)(nil)

// RepoRoot returns the top-level directory of the working copy.
func (c *CLI) RepoRoot(ctx context.Context) (string, error) {
	return c.runner.Run(ctx, "rev-parse", "--show-toplevel")
}

// CurrentBranch returns the checked-out branch, or "" when HEAD is detached.
func (c *CLI) CurrentBranch(ctx context.Context) (string, error) {
	return c.runner.Run(ctx, "branch", "--show-current")
}

// Remotes returns the remote list with fetch and push URLs.
func (c *CLI) Remotes(ctx context.Context) (string, error) {
	return c.runner.Run(ctx, "remote", "-v")
}

// RecentCommits returns up to limit commits, newest first, one per line.
func (c *CLI) RecentCommits(ctx context.Context, limit int) (string, error) {
	return c.runner.Run(ctx, "log", "--oneline", "-"+strconv.Itoa(limit))
}

// Status returns the porcelain working-tree status.
func (c *CLI) Status(ctx context.Context) (string, error) {
	return c.runner.Run(ctx, "status", "--porcelain")
}

// Branches returns local and remote-tracking branches, the current one
// marked with "* ".
func (c *CLI) Branches(ctx context.Context) (string, error) {
	return c.runner.Run(ctx, "branch", "-a")
}
