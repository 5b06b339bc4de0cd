package advisor

import (
	"context"
	"errors"

	"github.com/gorewood/forkcheck/internal/git"
)

// fakeSource answers queries from fixed text and records every call.
type fakeSource struct {
	root, branch, remotes, commits, status, branches                   string
	rootErr, branchErr, remotesErr, commitsErr, statusErr, branchesErr error

	calls     []string
	lastLimit int
	branchSeq []string // consumed by successive CurrentBranch calls when set
}

var _ git.Source = (*fakeSource)(nil)

func (f *fakeSource) RepoRoot(context.Context) (string, error) {
	f.calls = append(f.calls, "root")
	return f.root, f.rootErr
}

func (f *fakeSource) CurrentBranch(context.Context) (string, error) {
	f.calls = append(f.calls, "branch")
	if len(f.branchSeq) > 0 {
		next := f.branchSeq[0]
		f.branchSeq = f.branchSeq[1:]
		return next, nil
	}
	return f.branch, f.branchErr
}

func (f *fakeSource) Remotes(context.Context) (string, error) {
	f.calls = append(f.calls, "remotes")
	return f.remotes, f.remotesErr
}

func (f *fakeSource) RecentCommits(_ context.Context, limit int) (string, error) {
	f.calls = append(f.calls, "log")
	f.lastLimit = limit
	return f.commits, f.commitsErr
}

func (f *fakeSource) Status(context.Context) (string, error) {
	f.calls = append(f.calls, "status")
	return f.status, f.statusErr
}

func (f *fakeSource) Branches(context.Context) (string, error) {
	f.calls = append(f.calls, "branches")
	return f.branches, f.branchesErr
}

// gitFailure mimics a failed git invocation with stderr.
func gitFailure(stderr string) error {
	return &git.CommandError{Args: []string{"x"}, Stderr: stderr, Err: errors.New("exit status 128")}
}

const (
	forkRemotes = "origin\thttps://fork/repo.git (fetch)\n" +
		"origin\thttps://fork/repo.git (push)\n" +
		"upstream\thttps://canonical/repo.git (fetch)\n" +
		"upstream\thttps://canonical/repo.git (push)"
	originOnlyRemotes = "origin\thttps://fork/repo.git (fetch)\norigin\thttps://fork/repo.git (push)"
)
