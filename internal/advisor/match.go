package advisor

import (
	"strings"

	"github.com/samber/lo"

	"github.com/gorewood/forkcheck/internal/config"
)

// BranchLocation is where a named branch was found in the branch listing.
type BranchLocation string

// Branch locations, in precedence order.
const (
	BranchCheckedOut BranchLocation = "checked-out"
	BranchRemoteOnly BranchLocation = "remote"
	BranchLocalOnly  BranchLocation = "local"
	BranchMissing    BranchLocation = "missing"
)

// HasRemote reports whether the remote listing mentions name.
//
// In substring mode any occurrence of name counts, including inside a URL or
// a longer remote name. In exact mode only the first field of a line counts.
func HasRemote(remotes, name string, mode config.MatchMode) bool {
	if mode == config.MatchExact {
		return lo.Contains(RemoteNames(remotes), name)
	}
	return strings.Contains(remotes, name)
}

// RemoteNames returns the distinct remote names of a "git remote -v" listing
// in first-seen order.
func RemoteNames(remotes string) []string {
	names := lo.FilterMap(lines(remotes), func(line string, _ int) (string, bool) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return "", false
		}
		return fields[0], true
	})
	return lo.Uniq(names)
}

// LocateBranch classifies name against a "git branch -a" listing. Checked
// out wins over remote-tracking on originRemote, which wins over local.
//
// Substring mode tests "* <name>", "remotes/<origin>/<name>" and bare <name>
// anywhere in the text, so "mark2-old" also satisfies "mark2". Exact mode
// compares whole branch entries.
func LocateBranch(branches, name, originRemote string, mode config.MatchMode) BranchLocation {
	remoteRef := "remotes/" + originRemote + "/" + name

	if mode != config.MatchExact {
		switch {
		case !strings.Contains(branches, name):
			return BranchMissing
		case strings.Contains(branches, "* "+name):
			return BranchCheckedOut
		case strings.Contains(branches, remoteRef):
			return BranchRemoteOnly
		default:
			return BranchLocalOnly
		}
	}

	var checkedOut, remote, local bool
	for _, entry := range branchEntries(branches) {
		switch {
		case entry.current && entry.name == name:
			checkedOut = true
		case entry.name == remoteRef:
			remote = true
		case entry.name == name:
			local = true
		}
	}

	switch {
	case checkedOut:
		return BranchCheckedOut
	case remote:
		return BranchRemoteOnly
	case local:
		return BranchLocalOnly
	default:
		return BranchMissing
	}
}

// BranchNames returns the short branch names of a "git branch -a" listing:
// local names as-is and remote-tracking names without their "remotes/<r>/"
// prefix. Symbolic and detached entries are skipped.
func BranchNames(branches string) []string {
	names := lo.FilterMap(branchEntries(branches), func(entry branchEntry, _ int) (string, bool) {
		if entry.symbolic || strings.HasPrefix(entry.name, "(") {
			return "", false
		}
		if rest, ok := strings.CutPrefix(entry.name, "remotes/"); ok {
			_, short, found := strings.Cut(rest, "/")
			return short, found
		}
		return entry.name, true
	})
	return lo.Uniq(names)
}

// branchEntry is one parsed line of "git branch -a".
type branchEntry struct {
	name     string
	current  bool
	symbolic bool
}

func branchEntries(branches string) []branchEntry {
	return lo.Map(lines(branches), func(line string, _ int) branchEntry {
		entry := branchEntry{}
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, "* "); ok {
			entry.current = true
			trimmed = rest
		}
		if name, _, ok := strings.Cut(trimmed, " -> "); ok {
			entry.symbolic = true
			trimmed = name
		}
		entry.name = trimmed
		return entry
	})
}

// lines splits command text into lines; empty text has no lines.
func lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
