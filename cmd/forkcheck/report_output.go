package main

import (
	"fmt"
	"strings"

	"github.com/gorewood/forkcheck/internal/advisor"
	"github.com/gorewood/forkcheck/internal/output"
)

// renderReport prints the human-readable report. A report that stopped at
// the repository check renders only the banner and that failure.
func renderReport(printer *output.Printer, report *advisor.Report) {
	printer.Line(output.MarkNone, "%s - Git Fork Helper", report.Project)
	printer.Line(output.MarkNone, "This tool helps you understand your git setup and contribution workflow.")

	printer.Section("Git Configuration Analysis")
	if !report.Repository.Found {
		printer.Line(output.MarkFail, "Not in a git repository!")
		if report.Repository.Error != "" {
			printer.Indent(report.Repository.Error)
		}
		return
	}
	printer.Line(output.MarkOK, "Git repository found: %s", report.Repository.Root)
	printer.Line(output.MarkInfo, "Current branch: %s", report.Branch)

	printer.Heading("Remote repositories:")
	renderListing(printer, report.Remotes, "No remotes configured")

	printer.Heading("Recent commits:")
	renderListing(printer, report.Commits, "No commits yet")

	printer.Heading("Working directory status:")
	if report.Status.Empty() {
		printer.Print("   ")
		printer.Line(output.MarkOK, "Working directory clean")
	} else {
		printer.Indent("Modified files:")
		renderListing(printer, report.Status, "")
	}

	renderForkSetup(printer, report.Fork)
	for _, check := range report.Watched {
		renderBranchCheck(printer, check)
	}
	renderGuidance(printer, report.Guidance)
	renderSummary(printer, report.Summary)
}

func renderListing(printer *output.Printer, listing advisor.Listing, placeholder string) {
	if listing.Empty() {
		printer.Indent(placeholder)
		return
	}
	for _, line := range listing.Lines {
		printer.Indent(line)
	}
}

func renderForkSetup(printer *output.Printer, fork advisor.ForkSetup) {
	printer.Section("Fork Setup Analysis")
	printer.Line(flagMark(fork.HasOrigin), "%s remote configured: %t", capitalize(fork.OriginRemote), fork.HasOrigin)
	printer.Line(flagMark(fork.HasUpstream), "%s remote configured: %t", capitalize(fork.UpstreamRemote), fork.HasUpstream)
	printer.Println()

	switch fork.Verdict {
	case advisor.ForkReady:
		printer.Line(output.MarkOK, "%s", fork.Message)
	case advisor.ForkMissingUpstream:
		printer.Line(output.MarkWarn, "%s", fork.Message)
	default:
		printer.Line(output.MarkFail, "%s", fork.Message)
	}
	for _, hint := range fork.Hints {
		printer.Indent(hint.Label)
		printer.Command("%s", hint.Command)
	}
}

func renderBranchCheck(printer *output.Printer, check advisor.BranchCheck) {
	printer.Section(fmt.Sprintf("Checking for '%s' branch", check.Name))

	mark := output.MarkInfo
	switch check.Location {
	case advisor.BranchCheckedOut:
		mark = output.MarkOK
	case advisor.BranchMissing:
		mark = output.MarkQuestion
	}
	printer.Line(mark, "%s", check.Message)

	for _, hint := range check.Hints {
		printer.Indent(hint.Label + " " + hint.Command)
	}
	if len(check.Suggestions) > 0 {
		printer.Indent("Did you mean: " + strings.Join(check.Suggestions, ", ") + "?")
	}
}

func renderGuidance(printer *output.Printer, guidance advisor.Guidance) {
	printer.Section("Next Steps Guidance")
	printer.Line(output.MarkInfo, "%s", guidance.Message)
	for i, step := range guidance.Steps {
		printer.Indent(fmt.Sprintf("%d. %s", i+1, step))
	}
	if guidance.ContributingDoc != "" {
		printer.Println()
		printer.Line(output.MarkInfo, "For detailed instructions, see %s", guidance.ContributingDoc)
	}
}

func renderSummary(printer *output.Printer, summary advisor.Summary) {
	mark := output.MarkWarn
	if summary.Ready {
		mark = output.MarkOK
	}

	lines := []string{
		printer.Marked(mark, summary.Message),
		printer.Marked(output.MarkInfo, summary.Next),
		"",
	}
	for i, line := range summary.Reminder {
		if i == 0 {
			lines = append(lines, printer.Marked(output.MarkInfo, line))
			continue
		}
		lines = append(lines, "   "+line)
	}

	printer.Println()
	printer.Box("Summary", strings.Join(lines, "\n"))
}

// flagMark maps a remote flag to its line mark.
func flagMark(ok bool) output.Mark {
	if ok {
		return output.MarkOK
	}
	return output.MarkFail
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
