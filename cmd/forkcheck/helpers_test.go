package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// runInDir runs a function with the working directory set to dir.
func runInDir(t *testing.T, dir string, testFunc func()) {
	t.Helper()
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	defer func() {
		if err := os.Chdir(oldDir); err != nil {
			t.Errorf("failed to restore dir: %v", err)
		}
	}()
	testFunc()
}

// runGit runs a git command in the given directory.
func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.CommandContext(context.Background(), "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\nOutput: %s", args, err, out)
	}
}

// isolate keeps the test away from the user's config and environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("FORKCHECK_CONFIG_HOME", t.TempDir())
	t.Setenv("FORKCHECK_UPSTREAM_URL", "")
	t.Setenv("FORKCHECK_WATCH_BRANCHES", "")
	os.Unsetenv("FORKCHECK_UPSTREAM_URL")
	os.Unsetenv("FORKCHECK_WATCH_BRANCHES")
}

// newRepo creates a repository on main with one commit and the given
// remotes (name → URL).
func newRepo(t *testing.T, remotes map[string]string) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	isolate(t)

	dir := t.TempDir()
	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "commit.gpgsign", "false")

	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	runGit(t, dir, "add", "README.md")
	runGit(t, dir, "commit", "-m", "Initial commit")

	for name, url := range remotes {
		runGit(t, dir, "remote", "add", name, url)
	}
	return dir
}

// notARepo returns a directory git will not resolve to any repository.
func notARepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	isolate(t)

	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	return dir
}

// execute runs the root command with args in dir.
func execute(t *testing.T, dir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	runInDir(t, dir, func() {
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs(args)
		err = cmd.Execute()
	})
	return out.String(), errOut.String(), err
}

var forkRemotes = map[string]string{
	"origin":   "https://github.com/contributor/fork.git",
	"upstream": "https://github.com/canonical/project.git",
}
