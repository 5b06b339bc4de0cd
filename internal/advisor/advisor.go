// Package advisor inspects a working copy through a git.Source and decides
// which contribution-workflow guidance applies to it.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/gorewood/forkcheck/internal/config"
	"github.com/gorewood/forkcheck/internal/git"
)

// ErrNotRepository is returned by Run when the working directory is not
// inside a repository.
var ErrNotRepository = errors.New("not in a git repository")

// maxSuggestions caps the "did you mean" list for a missing branch.
const maxSuggestions = 3

// Advisor runs the report steps against a Source. Each step issues its own
// queries; nothing is cached between steps or runs.
type Advisor struct {
	src git.Source
	cfg *config.Config
}

// New creates an Advisor.
func New(src git.Source, cfg *config.Config) *Advisor {
	return &Advisor{src: src, cfg: cfg}
}

// WatchBranches returns the branch names Run checks.
func (a *Advisor) WatchBranches() []string {
	return slices.Clone(a.cfg.WatchBranches)
}

// Run executes every step in order. When the repository check fails it
// returns the partial report and an error wrapping ErrNotRepository; no
// other step runs.
func (a *Advisor) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		Project:    a.cfg.ProjectName,
		Repository: a.VerifyRepository(ctx),
	}
	if !report.Repository.Found {
		return report, fmt.Errorf("%w: %s", ErrNotRepository, report.Repository.Error)
	}

	report.Branch = a.ReportCurrentBranch(ctx)
	report.Remotes = a.ReportRemotes(ctx)
	report.Commits = a.ReportRecentCommits(ctx)
	report.Status = a.ReportWorkingTreeStatus(ctx)
	report.Fork = a.AnalyzeForkSetup(ctx)
	report.Watched = make([]BranchCheck, 0, len(a.cfg.WatchBranches))
	for _, name := range a.cfg.WatchBranches {
		report.Watched = append(report.Watched, a.CheckNamedBranch(ctx, name))
	}
	report.Guidance = a.PrintGuidance(ctx)
	report.Summary = a.PrintSummary(report.Fork.OK)
	return report, nil
}

// VerifyRepository locates the top-level directory of the working copy.
func (a *Advisor) VerifyRepository(ctx context.Context) RepositoryCheck {
	root, err := a.src.RepoRoot(ctx)
	if err != nil {
		return RepositoryCheck{Error: git.InlineError(err)}
	}
	return RepositoryCheck{Found: true, Root: root}
}

// ReportCurrentBranch returns the checked-out branch verbatim: "" when HEAD
// is detached, "Error: ..." when the query fails.
func (a *Advisor) ReportCurrentBranch(ctx context.Context) string {
	return textOf(a.src.CurrentBranch(ctx))
}

// ReportRemotes lists configured remotes with their URLs.
func (a *Advisor) ReportRemotes(ctx context.Context) Listing {
	return listingOf(a.src.Remotes(ctx))
}

// ReportRecentCommits lists at most commit_limit commits, newest first.
func (a *Advisor) ReportRecentCommits(ctx context.Context) Listing {
	listing := listingOf(a.src.RecentCommits(ctx, a.cfg.CommitLimit))
	if len(listing.Lines) > a.cfg.CommitLimit {
		listing.Lines = listing.Lines[:a.cfg.CommitLimit]
	}
	return listing
}

// ReportWorkingTreeStatus lists modified and untracked paths.
func (a *Advisor) ReportWorkingTreeStatus(ctx context.Context) Listing {
	return listingOf(a.src.Status(ctx))
}

// AnalyzeForkSetup re-reads the remote list and checks for the origin and
// upstream remotes. OK is true only when both are present.
func (a *Advisor) AnalyzeForkSetup(ctx context.Context) ForkSetup {
	remotes := textOf(a.src.Remotes(ctx))

	setup := ForkSetup{
		OriginRemote:   a.cfg.OriginRemote,
		UpstreamRemote: a.cfg.UpstreamRemote,
		HasOrigin:      HasRemote(remotes, a.cfg.OriginRemote, a.cfg.Match),
		HasUpstream:    HasRemote(remotes, a.cfg.UpstreamRemote, a.cfg.Match),
	}

	switch {
	case setup.HasOrigin && setup.HasUpstream:
		setup.OK = true
		setup.Verdict = ForkReady
		setup.Message = "Perfect! Your repository is properly configured for fork workflow."
	case setup.HasOrigin:
		setup.Verdict = ForkMissingUpstream
		setup.Message = "You have a fork but " + a.cfg.UpstreamRemote + " is not configured."
		setup.Hints = []Hint{{
			Label:   "Add " + a.cfg.UpstreamRemote + " remote with:",
			Command: "git remote add " + a.cfg.UpstreamRemote + " " + a.cfg.UpstreamURL,
		}}
	default:
		setup.Verdict = ForkNeedsAttention
		setup.Message = "Repository setup needs attention."
	}
	return setup
}

// CheckNamedBranch reports whether name is checked out, only on the origin
// fork, only local, or absent, with the command that fits each case.
func (a *Advisor) CheckNamedBranch(ctx context.Context, name string) BranchCheck {
	branches := textOf(a.src.Branches(ctx))
	origin := a.cfg.OriginRemote

	check := BranchCheck{
		Name:     name,
		Location: LocateBranch(branches, name, origin, a.cfg.Match),
	}

	switch check.Location {
	case BranchCheckedOut:
		check.Message = fmt.Sprintf("You're currently on the '%s' branch!", name)
	case BranchRemoteOnly:
		check.Message = fmt.Sprintf("'%s' branch exists on your remote fork.", name)
		check.Hints = []Hint{{Label: "To work on it locally:", Command: "git checkout " + name}}
	case BranchLocalOnly:
		check.Message = fmt.Sprintf("'%s' branch exists locally.", name)
		check.Hints = []Hint{
			{Label: "To switch to it:", Command: "git checkout " + name},
			{Label: "To push it:", Command: "git push " + origin + " " + name},
		}
	default:
		check.Message = fmt.Sprintf("No '%s' branch found.", name)
		check.Hints = []Hint{{Label: "If you want to create it:", Command: "git checkout -b " + name}}
		check.Suggestions = similarBranches(name, BranchNames(branches))
	}
	return check
}

// PrintGuidance re-reads the current branch and picks the feature-branch
// recipe on a default branch, or the push-this-branch recipe otherwise.
func (a *Advisor) PrintGuidance(ctx context.Context) Guidance {
	branch := textOf(a.src.CurrentBranch(ctx))
	origin := a.cfg.OriginRemote
	commit := "git commit -m 'Your descriptive message'"

	guidance := Guidance{
		Branch:          branch,
		OnDefaultBranch: a.cfg.IsDefaultBranch(branch),
		ContributingDoc: a.cfg.ContributingDoc,
	}

	if guidance.OnDefaultBranch {
		guidance.Message = fmt.Sprintf("You're on the '%s' branch. To create a new feature branch:", branch)
		guidance.Steps = []string{
			"git checkout -b your-feature-branch-name",
			"Make your changes",
			"git add .",
			commit,
			"git push " + origin + " your-feature-branch-name",
			"Create Pull Request on GitHub",
		}
		return guidance
	}

	guidance.Message = fmt.Sprintf("You're on branch '%s'. To contribute:", branch)
	guidance.Steps = []string{
		"Make your changes",
		"git add .",
		commit,
		"git push " + origin + " " + branch,
		"Create Pull Request on GitHub",
	}
	return guidance
}

// PrintSummary closes the report according to the fork setup outcome.
func (a *Advisor) PrintSummary(forkSetupOK bool) Summary {
	summary := Summary{
		Ready: forkSetupOK,
		Reminder: []string{
			"Remember: You cannot push directly to the " + a.cfg.UpstreamRemote + " repository.",
			"All contributions must go through the fork → pull request workflow.",
		},
	}

	if forkSetupOK {
		summary.Message = "Your repository is properly configured for contributions!"
		summary.Next = "Follow the guidance above to create and submit your pull request."
		return summary
	}

	summary.Message = "Your repository setup needs some adjustments."
	summary.Next = "See the contributing guide for detailed setup instructions."
	if a.cfg.ContributingDoc != "" {
		summary.Next = "See " + a.cfg.ContributingDoc + " for detailed setup instructions."
	}
	return summary
}

// textOf converts a query result into the text a section shows.
func textOf(out string, err error) string {
	if err != nil {
		return git.InlineError(err)
	}
	return out
}

// listingOf converts a query result into a Listing.
func listingOf(out string, err error) Listing {
	if err != nil {
		return Listing{Lines: []string{git.InlineError(err)}, Failed: true}
	}
	return Listing{Lines: lines(out)}
}

// similarBranches returns up to maxSuggestions branch names that fuzzily
// match name, best first.
func similarBranches(name string, candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}

	var out []string
	for _, match := range fuzzy.Find(name, candidates) {
		if strings.EqualFold(match.Str, name) {
			continue
		}
		out = append(out, match.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
