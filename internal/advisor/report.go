package advisor

// Report is the outcome of one advisor run, section by section, in the
// order the sections are produced.
type Report struct {
	Project    string          `json:"project"`
	Repository RepositoryCheck `json:"repository"`
	Branch     string          `json:"branch"`
	Remotes    Listing         `json:"remotes"`
	Commits    Listing         `json:"commits"`
	Status     Listing         `json:"status"`
	Fork       ForkSetup       `json:"fork"`
	Watched    []BranchCheck   `json:"watched_branches"`
	Guidance   Guidance        `json:"guidance"`
	Summary    Summary         `json:"summary"`
}

// Hint is a suggested command with the situation it applies to.
type Hint struct {
	Label   string `json:"label"`
	Command string `json:"command"`
}

// RepositoryCheck is the result of VerifyRepository.
type RepositoryCheck struct {
	Found bool   `json:"found"`
	Root  string `json:"root,omitempty"`
	Error string `json:"error,omitempty"`
}

// Listing is a multi-line section. Lines are the command output verbatim;
// a failed query yields a single "Error: ..." line and Failed set.
type Listing struct {
	Lines  []string `json:"lines"`
	Failed bool     `json:"failed,omitempty"`
}

// Empty reports whether the command succeeded with no output.
func (l Listing) Empty() bool {
	return len(l.Lines) == 0
}

// ForkVerdict names the outcome of AnalyzeForkSetup.
type ForkVerdict string

// Fork verdicts.
const (
	ForkReady           ForkVerdict = "ready"
	ForkMissingUpstream ForkVerdict = "missing-upstream"
	ForkNeedsAttention  ForkVerdict = "needs-attention"
)

// ForkSetup is the result of AnalyzeForkSetup.
type ForkSetup struct {
	OriginRemote   string      `json:"origin_remote"`
	UpstreamRemote string      `json:"upstream_remote"`
	HasOrigin      bool        `json:"has_origin"`
	HasUpstream    bool        `json:"has_upstream"`
	OK             bool        `json:"ok"`
	Verdict        ForkVerdict `json:"verdict"`
	Message        string      `json:"message"`
	Hints          []Hint      `json:"hints,omitempty"`
}

// BranchCheck is the result of CheckNamedBranch for one branch.
type BranchCheck struct {
	Name        string         `json:"name"`
	Location    BranchLocation `json:"location"`
	Message     string         `json:"message"`
	Hints       []Hint         `json:"hints,omitempty"`
	Suggestions []string       `json:"suggestions,omitempty"`
}

// Guidance is the result of PrintGuidance.
type Guidance struct {
	Branch          string   `json:"branch"`
	OnDefaultBranch bool     `json:"on_default_branch"`
	Message         string   `json:"message"`
	Steps           []string `json:"steps"`
	ContributingDoc string   `json:"contributing_doc,omitempty"`
}

// Summary is the result of PrintSummary.
type Summary struct {
	Ready    bool     `json:"ready"`
	Message  string   `json:"message"`
	Next     string   `json:"next"`
	Reminder []string `json:"reminder"`
}
