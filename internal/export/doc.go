// Package export writes a forkcheck report to a file or writer for use
// outside the terminal, such as attaching a setup check to an issue or a
// pull request.
//
// # Supported Formats
//
//   - JSON: the full report, identical to forkcheck --json
//   - Markdown: a readable document with YAML frontmatter
//
// # Markdown Export
//
//	markdown := export.FormatMarkdown(report)
//	export.WriteFile(report, export.FormatMarkdownName, "setup.md")
//
// Example markdown output:
//
//	---
//	schema: forkcheck.report/v1
//	project: Federated DDoS Detection
//	root: /home/dev/project
//	branch: feature/login
//	fork: ready
//	ready: true
//	---
//
//	# Federated DDoS Detection fork check
//
//	## Remotes
//
//	    origin	https://github.com/dev/project.git (fetch)
//	    ...
//
//	## Fork setup
//
//	- [x] origin remote configured
//	- [x] upstream remote configured
//
// Command output is kept verbatim inside indented blocks.
package export
