package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ruleWidth is the width of the decorative separator around section titles.
const ruleWidth = 60

// Mark is the symbol prefix of a report line.
type Mark int

// Report line marks.
const (
	MarkNone Mark = iota
	MarkOK
	MarkFail
	MarkWarn
	MarkInfo
	MarkQuestion
)

// Printer handles formatted output to a writer.
// It supports both JSON and human-readable output modes.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
	Accent  lipgloss.Style
	Border  lipgloss.Color
}

// NewPrinter creates a new Printer.
// If jsonMode is true, commands are expected to emit JSON documents.
// If isTTY is true, colors will be enabled for human output.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Bold:    lipgloss.NewStyle().Bold(true),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // Blue
		Muted:   lipgloss.NewStyle().Faint(true),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")), // Magenta
		Border:  lipgloss.Color("8"),                                  // Gray
	}

	if !isTTY {
		plain := lipgloss.NewStyle()
		styles.Error = plain
		styles.Success = plain
		styles.Warning = plain
		styles.Bold = plain
		styles.Title = plain
		styles.Muted = plain
		styles.Key = plain
		styles.Accent = plain
		styles.Border = lipgloss.Color("")
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		isTTY:  isTTY,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors and warnings in human mode.
// In JSON mode, errors still go to the main writer (structured protocol).
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY returns true if the printer output is a TTY.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Success outputs a success result.
// For JSON mode, outputs the data as JSON.
// For human mode, prints the "message" key, then the remaining keys sorted.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		return p.writeJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
		return nil
	}

	for _, key := range slices.Sorted(maps.Keys(data)) {
		mustWrite(fmt.Fprintf(p.w, "%s: %v\n", p.styles.Bold.Render(key), data[key]))
	}
	return nil
}

// Error outputs an error and marks it reported.
// For JSON mode, outputs {"error": "...", "code": N} to the main writer.
// For human mode, outputs a styled error message to errW.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{
			Code:    ExitUserError,
			Message: err.Error(),
		}
	}
	exitErr.Reported = true

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Message, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn outputs a warning message to errW.
// For JSON mode, outputs {"warning": "..."} so stdout stays one document.
// For human mode, outputs a styled "Warning:" line.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		data, _ := json.Marshal(map[string]string{"warning": msg})
		mustWrite(fmt.Fprintln(p.errW, string(data)))
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// WriteJSON encodes any data as JSON and writes it.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N}
func ErrorJSON(message string, code int) []byte {
	data := map[string]any{
		"error": message,
		"code":  code,
	}
	result, _ := json.Marshal(data)
	return result
}

// Rule renders a full-width decorative separator.
func (p *Printer) Rule() {
	mustWrite(fmt.Fprintln(p.w, p.styles.Muted.Render(strings.Repeat("=", ruleWidth))))
}

// Section renders a titled block header framed by separators.
// Adds a blank line before the header.
func (p *Printer) Section(title string) {
	mustWrite(fmt.Fprintln(p.w))
	p.Rule()
	mustWrite(fmt.Fprintln(p.w, p.styles.Title.Render(title)))
	p.Rule()
}

// Heading renders a sub-heading inside a section, preceded by a blank line.
func (p *Printer) Heading(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Bold.Render(title)))
}

// Line renders a single report line with a symbol prefix.
// Text is written verbatim after the mark.
func (p *Printer) Line(mark Mark, format string, args ...any) {
	mustWrite(fmt.Fprintln(p.w, p.Marked(mark, fmt.Sprintf(format, args...))))
}

// Indent renders an indented detail line. The text is not styled so command
// output passes through unchanged.
func (p *Printer) Indent(text string) {
	mustWrite(fmt.Fprintf(p.w, "   %s\n", text))
}

// Command renders an indented, accented suggested command.
func (p *Printer) Command(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, "   %s\n", p.styles.Accent.Render(fmt.Sprintf(format, args...))))
}

// Box renders content in a bordered box with an optional title.
// For TTY output, uses lipgloss.RoundedBorder.
// For non-TTY output, renders plain text without borders.
func (p *Printer) Box(title string, content string) {
	if !p.isTTY {
		if title != "" {
			mustWrite(fmt.Fprintln(p.w, title))
			mustWrite(fmt.Fprintln(p.w))
		}
		mustWrite(fmt.Fprintln(p.w, content))
		return
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.styles.Border).
		Padding(0, 1)

	boxContent := content
	if title != "" {
		boxContent = p.styles.Title.Render(title) + "\n\n" + content
	}

	mustWrite(fmt.Fprintln(p.w, style.Render(boxContent)))
}

// Marked returns text prefixed with the styled symbol for mark, for content
// composed before it is written (such as a Box body).
func (p *Printer) Marked(mark Mark, text string) string {
	if mark == MarkNone {
		return text
	}
	return p.markIcon(mark) + " " + text
}

// markIcon returns the styled symbol for a mark.
func (p *Printer) markIcon(mark Mark) string {
	switch mark {
	case MarkOK:
		return p.styles.Success.Render("✓")
	case MarkFail:
		return p.styles.Error.Render("✗")
	case MarkWarn:
		return p.styles.Warning.Render("!")
	case MarkInfo:
		return p.styles.Key.Render("•")
	case MarkQuestion:
		return p.styles.Warning.Render("?")
	default:
		return ""
	}
}

// mustWrite panics if a write operation fails.
// Use this to wrap write operations that should never fail
// (e.g., writing to stdout/stderr or buffers).
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
