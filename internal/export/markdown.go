package export

import (
	"fmt"
	"strings"

	"github.com/gorewood/forkcheck/internal/advisor"
)

// Schema identifies the markdown frontmatter layout.
const Schema = "forkcheck.report/v1"

// FormatMarkdown formats a report as a markdown document.
// A report that stopped at the repository check yields only the
// frontmatter and the failure.
func FormatMarkdown(report *advisor.Report) string {
	var builder strings.Builder

	writeFrontmatter(&builder, report)
	fmt.Fprintf(&builder, "# %s fork check\n\n", report.Project)

	if !report.Repository.Found {
		builder.WriteString("Not in a git repository.\n")
		if report.Repository.Error != "" {
			writeBlock(&builder, []string{report.Repository.Error})
		}
		return builder.String()
	}

	writeListing(&builder, "Remotes", report.Remotes, "No remotes configured.")
	writeListing(&builder, "Recent commits", report.Commits, "No commits yet.")
	writeListing(&builder, "Working tree", report.Status, "Working directory clean.")
	writeForkSetup(&builder, report.Fork)
	for _, check := range report.Watched {
		writeBranchCheck(&builder, check)
	}
	writeGuidance(&builder, report.Guidance)
	writeSummary(&builder, report.Summary)

	return builder.String()
}

// writeFrontmatter writes the YAML frontmatter section.
func writeFrontmatter(builder *strings.Builder, report *advisor.Report) {
	builder.WriteString("---\n")
	fmt.Fprintf(builder, "schema: %s\n", Schema)
	fmt.Fprintf(builder, "project: %s\n", report.Project)
	if report.Repository.Found {
		fmt.Fprintf(builder, "root: %s\n", report.Repository.Root)
		fmt.Fprintf(builder, "branch: %s\n", report.Branch)
		fmt.Fprintf(builder, "fork: %s\n", report.Fork.Verdict)
	}
	fmt.Fprintf(builder, "ready: %t\n", report.Summary.Ready)
	builder.WriteString("---\n\n")
}

func writeListing(builder *strings.Builder, title string, listing advisor.Listing, placeholder string) {
	fmt.Fprintf(builder, "## %s\n\n", title)
	if listing.Empty() {
		builder.WriteString(placeholder + "\n\n")
		return
	}
	writeBlock(builder, listing.Lines)
}

func writeForkSetup(builder *strings.Builder, fork advisor.ForkSetup) {
	builder.WriteString("## Fork setup\n\n")
	fmt.Fprintf(builder, "- [%s] %s remote configured\n", checkbox(fork.HasOrigin), fork.OriginRemote)
	fmt.Fprintf(builder, "- [%s] %s remote configured\n\n", checkbox(fork.HasUpstream), fork.UpstreamRemote)
	builder.WriteString(fork.Message + "\n\n")
	writeHints(builder, fork.Hints)
}

func writeBranchCheck(builder *strings.Builder, check advisor.BranchCheck) {
	fmt.Fprintf(builder, "## Branch `%s`\n\n", check.Name)
	builder.WriteString(check.Message + "\n\n")
	writeHints(builder, check.Hints)
	if len(check.Suggestions) > 0 {
		fmt.Fprintf(builder, "Similar branches: `%s`\n\n", strings.Join(check.Suggestions, "`, `"))
	}
}

func writeGuidance(builder *strings.Builder, guidance advisor.Guidance) {
	builder.WriteString("## Next steps\n\n")
	builder.WriteString(guidance.Message + "\n\n")
	for i, step := range guidance.Steps {
		fmt.Fprintf(builder, "%d. %s\n", i+1, step)
	}
	builder.WriteString("\n")
	if guidance.ContributingDoc != "" {
		fmt.Fprintf(builder, "See %s for detailed instructions.\n\n", guidance.ContributingDoc)
	}
}

func writeSummary(builder *strings.Builder, summary advisor.Summary) {
	builder.WriteString("## Summary\n\n")
	builder.WriteString(summary.Message + " " + summary.Next + "\n\n")
	builder.WriteString("> " + strings.Join(summary.Reminder, "\n> ") + "\n")
}

func writeHints(builder *strings.Builder, hints []advisor.Hint) {
	for _, hint := range hints {
		fmt.Fprintf(builder, "%s\n\n", hint.Label)
		writeBlock(builder, []string{hint.Command})
	}
}

// writeBlock writes lines as an indented code block so they render verbatim.
func writeBlock(builder *strings.Builder, lines []string) {
	for _, line := range lines {
		builder.WriteString("    " + line + "\n")
	}
	builder.WriteString("\n")
}

func checkbox(ok bool) string {
	if ok {
		return "x"
	}
	return " "
}
