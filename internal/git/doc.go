// Package git answers the read-only repository queries forkcheck reports on.
//
// Two Sources implement the same six queries and return text in the shape
// the git CLI prints it, trimmed of surrounding whitespace:
//
//	src := git.NewCLI(git.NewRunner(dir, logger))  // shells out to git
//	src := git.NewRepository(dir)                  // reads with go-git
//
//	root, err := src.RepoRoot(ctx)          // git rev-parse --show-toplevel
//	branch, err := src.CurrentBranch(ctx)   // git branch --show-current
//	remotes, err := src.Remotes(ctx)        // git remote -v
//	log, err := src.RecentCommits(ctx, 5)   // git log --oneline -5
//	status, err := src.Status(ctx)          // git status --porcelain
//	all, err := src.Branches(ctx)           // git branch -a
//
// # Running Git Commands
//
// Runner executes git with an explicit argument vector; no shell is involved
// and nothing is interpolated into a command line. Each invocation is traced
// at debug level on the Runner's zap logger.
//
// # Error Handling
//
// A failed invocation returns a *CommandError carrying the trimmed stderr.
// A missing git binary returns an error matching ErrGitNotFound. Callers that
// only need the text shown to the user use InlineError.
package git
