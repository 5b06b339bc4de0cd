package advisor

import (
	"reflect"
	"testing"

	"github.com/gorewood/forkcheck/internal/config"
)

func TestHasRemote(t *testing.T) {
	tests := []struct {
		name    string
		remotes string
		remote  string
		mode    config.MatchMode
		want    bool
	}{
		{name: "substring present", remotes: forkRemotes, remote: "upstream", mode: config.MatchSubstring, want: true},
		{name: "substring absent", remotes: originOnlyRemotes, remote: "upstream", mode: config.MatchSubstring, want: false},
		{name: "substring empty listing", remotes: "", remote: "origin", mode: config.MatchSubstring, want: false},
		{
			name:    "substring matches inside URL",
			remotes: "fork\thttps://example.com/upstream/repo.git (fetch)",
			remote:  "upstream", mode: config.MatchSubstring, want: true,
		},
		{
			name:    "exact ignores URL text",
			remotes: "fork\thttps://example.com/upstream/repo.git (fetch)",
			remote:  "upstream", mode: config.MatchExact, want: false,
		},
		{
			name:    "exact ignores longer names",
			remotes: "upstream-old\thttps://example.com/x.git (fetch)",
			remote:  "upstream", mode: config.MatchExact, want: false,
		},
		{name: "exact present", remotes: forkRemotes, remote: "origin", mode: config.MatchExact, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasRemote(tt.remotes, tt.remote, tt.mode); got != tt.want {
				t.Errorf("HasRemote(%q) = %v, want %v", tt.remote, got, tt.want)
			}
		})
	}
}

func TestRemoteNames(t *testing.T) {
	got := RemoteNames(forkRemotes)
	if !reflect.DeepEqual(got, []string{"origin", "upstream"}) {
		t.Errorf("RemoteNames() = %v", got)
	}
	if got := RemoteNames(""); len(got) != 0 {
		t.Errorf("RemoteNames(\"\") = %v, want none", got)
	}
}

func TestLocateBranch_Substring(t *testing.T) {
	tests := []struct {
		name     string
		branches string
		want     BranchLocation
	}{
		{name: "checked out", branches: "main\n* mark2\n  remotes/origin/main", want: BranchCheckedOut},
		{name: "remote only", branches: "* main\n  remotes/origin/main\n  remotes/origin/mark2", want: BranchRemoteOnly},
		{name: "local only", branches: "* main\n  mark2\n  remotes/origin/main", want: BranchLocalOnly},
		{name: "not found", branches: "* main\n  remotes/origin/main", want: BranchMissing},
		{name: "empty listing", branches: "", want: BranchMissing},
		{
			name:     "checked out beats remote tracking",
			branches: "main\n* mark2\n  remotes/origin/mark2",
			want:     BranchCheckedOut,
		},
		{
			name:     "remote tracking beats local",
			branches: "* main\n  mark2\n  remotes/origin/mark2",
			want:     BranchRemoteOnly,
		},
		{
			name:     "other remote counts as local",
			branches: "* main\n  remotes/upstream/mark2",
			want:     BranchLocalOnly,
		},
		{
			name:     "prefix collision matches",
			branches: "* main\n  mark2-old",
			want:     BranchLocalOnly,
		},
		{
			name:     "first line without indent after trim",
			branches: "mark2\n* main",
			want:     BranchLocalOnly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocateBranch(tt.branches, "mark2", "origin", config.MatchSubstring)
			if got != tt.want {
				t.Errorf("LocateBranch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocateBranch_Exact(t *testing.T) {
	tests := []struct {
		name     string
		branches string
		want     BranchLocation
	}{
		{name: "checked out", branches: "main\n* mark2", want: BranchCheckedOut},
		{name: "remote only", branches: "* main\n  remotes/origin/mark2", want: BranchRemoteOnly},
		{name: "local only", branches: "mark2\n* main", want: BranchLocalOnly},
		{name: "prefix collision ignored", branches: "* main\n  mark2-old\n  remotes/origin/mark2-old", want: BranchMissing},
		{name: "checked out collision ignored", branches: "* mark2-old\n  main", want: BranchMissing},
		{name: "precedence kept", branches: "* mark2\n  remotes/origin/mark2", want: BranchCheckedOut},
		{name: "symbolic ref", branches: "* main\n  remotes/origin/HEAD -> origin/main", want: BranchMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocateBranch(tt.branches, "mark2", "origin", config.MatchExact)
			if got != tt.want {
				t.Errorf("LocateBranch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocateBranch_CustomOrigin(t *testing.T) {
	branches := "* main\n  remotes/fork/mark2"
	for _, mode := range []config.MatchMode{config.MatchSubstring, config.MatchExact} {
		if got := LocateBranch(branches, "mark2", "fork", mode); got != BranchRemoteOnly {
			t.Errorf("mode %s: LocateBranch() = %q, want remote", mode, got)
		}
	}
}

func TestBranchNames(t *testing.T) {
	branches := "* (HEAD detached at abc1234)\n" +
		"  feature/login\n" +
		"  main\n" +
		"  remotes/origin/HEAD -> origin/main\n" +
		"  remotes/origin/main\n" +
		"  remotes/origin/release/v2"

	got := BranchNames(branches)
	want := []string{"feature/login", "main", "release/v2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BranchNames() = %v, want %v", got, want)
	}
}
