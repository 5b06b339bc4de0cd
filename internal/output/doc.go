// Package output provides structured output handling for the forkcheck CLI.
//
// This package renders the workflow report for humans and for machines. Every
// command builds a Printer from its cobra writer:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Rule()                     // decorative section separator
//	printer.Heading("Fork Setup Analysis")
//	printer.Line(output.MarkOK, "Working directory clean")
//	printer.Indent("git checkout -b feature")
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), commands write one document
// with WriteJSON and errors are emitted as:
//
//	{"error": "message", "code": N}
//
// # Styling
//
// Human output is styled with lipgloss. Styles collapse to plain text when the
// writer is not a terminal or when --color never is given, so piped output
// never carries ANSI sequences.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: report printed
//	output.ExitUserError   // 1: not in a repository, bad flags, bad config
//	output.ExitSystemError // 2: I/O failure, transport failure
//
// Use NewUserError, NewSystemError and NewSystemErrorWithCause to build errors
// that carry these codes; GetExitCode maps any error to a process exit code.
package output
