package git

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// Repository is a Source that reads the working copy with go-git instead of
// executing git. Output mirrors the git CLI text for the same query.
type Repository struct {
	dir string
}

// NewRepository creates a go-git source that discovers the repository
// containing dir.
func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

var _ Source = (*Repository)(nil)

// open re-opens the repository on every query so results are never stale.
func (r *Repository) open() (*gogit.Repository, error) {
	dir := r.dir
	if dir == "" {
		dir = "."
	}
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}
	return repo, nil
}

// RepoRoot returns the top-level directory of the working copy.
func (r *Repository) RepoRoot(_ context.Context) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// CurrentBranch returns the checked-out branch, or "" when HEAD is detached.
// An unborn branch (no commits yet) still reports its name.
func (r *Repository) CurrentBranch(_ context.Context) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	return currentBranch(repo)
}

func currentBranch(repo *gogit.Repository) (string, error) {
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("reading HEAD: %w", err)
	}
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		return head.Target().Short(), nil
	}
	return "", nil
}

// Remotes mirrors "git remote -v": per remote, the first url as (fetch) and
// every pushurl as (push), falling back to every url when no pushurl is set.
// Remotes are sorted by name.
func (r *Repository) Remotes(_ context.Context) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	cfg, err := repo.Config()
	if err != nil {
		return "", fmt.Errorf("reading config: %w", err)
	}

	names := make([]string, 0, len(cfg.Remotes))
	for name := range cfg.Remotes {
		names = append(names, name)
	}
	slices.Sort(names)

	section := cfg.Raw.Section("remote")
	var lines []string
	for _, name := range names {
		sub := section.Subsection(name)
		urls := sub.OptionAll("url")
		if len(urls) == 0 {
			urls = cfg.Remotes[name].URLs
		}
		if len(urls) == 0 {
			continue
		}
		pushURLs := sub.OptionAll("pushurl")
		if len(pushURLs) == 0 {
			pushURLs = urls
		}

		lines = append(lines, name+"\t"+urls[0]+" (fetch)")
		for _, url := range pushURLs {
			lines = append(lines, name+"\t"+url+" (push)")
		}
	}
	return strings.Join(lines, "\n"), nil
}

// RecentCommits returns up to limit "<short sha> <subject>" lines, newest first.
func (r *Repository) RecentCommits(ctx context.Context, limit int) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("reading HEAD: %w", err)
	}

	iter, err := repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return "", fmt.Errorf("reading log: %w", err)
	}
	defer iter.Close()

	lines := make([]string, 0, limit)
	err = iter.ForEach(func(commit *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(lines) == limit {
			return storer.ErrStop
		}
		subject, _, _ := strings.Cut(strings.TrimSpace(commit.Message), "\n")
		lines = append(lines, commit.Hash.String()[:7]+" "+subject)
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return "", fmt.Errorf("walking log: %w", err)
	}
	return strings.Join(lines, "\n"), nil
}

// Status mirrors "git status --porcelain": changed tracked paths first, then
// untracked paths, each group sorted. A directory holding no tracked file is
// reported once as "?? dir/".
func (r *Repository) Status(_ context.Context) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return "", fmt.Errorf("reading status: %w", err)
	}
	idx, err := repo.Storer.Index()
	if err != nil {
		return "", fmt.Errorf("reading index: %w", err)
	}

	tracked := trackedDirs(idx)
	var changed []string
	untracked := make(map[string]struct{})
	for path, fs := range status {
		switch {
		case fs.Staging == gogit.Unmodified && fs.Worktree == gogit.Unmodified:
			continue
		case fs.Worktree == gogit.Untracked:
			untracked[untrackedRoot(path, tracked)] = struct{}{}
		default:
			changed = append(changed, path)
		}
	}
	slices.Sort(changed)

	lines := make([]string, 0, len(changed)+len(untracked))
	for _, path := range changed {
		fs := status[path]
		name := path
		if fs.Extra != "" {
			name = fs.Extra + " -> " + path
		}
		lines = append(lines, fmt.Sprintf("%c%c %s", fs.Staging, fs.Worktree, name))
	}
	for _, path := range slices.Sorted(maps.Keys(untracked)) {
		lines = append(lines, "?? "+path)
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// trackedDirs returns every directory that holds at least one indexed file.
func trackedDirs(idx *index.Index) map[string]bool {
	dirs := make(map[string]bool)
	for _, entry := range idx.Entries {
		dir := entry.Name
		for {
			slash := strings.LastIndexByte(dir, '/')
			if slash < 0 {
				break
			}
			dir = dir[:slash]
			if dirs[dir] {
				break
			}
			dirs[dir] = true
		}
	}
	return dirs
}

// untrackedRoot collapses an untracked path to its outermost directory that
// holds no tracked file, as "dir/".
func untrackedRoot(path string, tracked map[string]bool) string {
	for i, c := range path {
		if c == '/' && !tracked[path[:i]] {
			return path[:i+1]
		}
	}
	return path
}

// Branches lists local branches ("* " marks the current one, "  " the rest)
// followed by remote-tracking branches as "  remotes/<remote>/<branch>".
func (r *Repository) Branches(_ context.Context) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}

	current, err := currentBranch(repo)
	if err != nil {
		return "", err
	}

	refs, err := repo.References()
	if err != nil {
		return "", fmt.Errorf("listing references: %w", err)
	}
	defer refs.Close()

	var local, remote []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name()
		switch {
		case name.IsBranch():
			local = append(local, name.Short())
		case name.IsRemote():
			line := "remotes/" + strings.TrimPrefix(name.String(), "refs/remotes/")
			if ref.Type() == plumbing.SymbolicReference {
				line += " -> " + ref.Target().Short()
			}
			remote = append(remote, line)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("iterating references: %w", err)
	}
	slices.Sort(local)
	slices.Sort(remote)

	lines := make([]string, 0, len(local)+len(remote)+1)
	if current == "" {
		if head, headErr := repo.Head(); headErr == nil {
			lines = append(lines, "* (HEAD detached at "+head.Hash().String()[:7]+")")
		}
	}
	for _, name := range local {
		prefix := "  "
		if name == current {
			prefix = "* "
		}
		lines = append(lines, prefix+name)
	}
	for _, line := range remote {
		lines = append(lines, "  "+line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
