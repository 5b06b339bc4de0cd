package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		name      string
		colorMode string
		isTTY     bool
		want      bool
	}{
		{name: "never disables on TTY", colorMode: ColorNever, isTTY: true, want: false},
		{name: "never disables on non-TTY", colorMode: ColorNever, isTTY: false, want: false},
		{name: "always enables on TTY", colorMode: ColorAlways, isTTY: true, want: true},
		{name: "always enables on non-TTY", colorMode: ColorAlways, isTTY: false, want: true},
		{name: "auto uses TTY true", colorMode: ColorAuto, isTTY: true, want: true},
		{name: "auto uses TTY false", colorMode: ColorAuto, isTTY: false, want: false},
		{name: "empty string defaults to auto", colorMode: "", isTTY: true, want: true},
		{name: "unknown value defaults to auto", colorMode: "bogus", isTTY: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveColorMode(tt.colorMode, tt.isTTY)
			if got != tt.want {
				t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.colorMode, tt.isTTY, got, tt.want)
			}
		})
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) should return false")
	}
}

func TestIsTTY_RegularFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer file.Close() //nolint:errcheck // test cleanup

	if IsTTY(file) {
		t.Error("IsTTY(regular file) should return false")
	}
}

func TestResolveColorMode_NeverClearsStyles(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, ResolveColorMode(ColorNever, true))

	if printer.IsTTY() {
		t.Error("printer should report non-TTY when color=never")
	}
	empty := lipgloss.NewStyle()
	if printer.styles.Error.GetForeground() != empty.GetForeground() {
		t.Error("Error style should have no foreground color when color=never")
	}
}

func TestResolveColorMode_AlwaysKeepsStyles(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, ResolveColorMode(ColorAlways, false))

	if !printer.IsTTY() {
		t.Error("printer should report TTY when color=always")
	}
	empty := lipgloss.NewStyle()
	if printer.styles.Error.GetForeground() == empty.GetForeground() {
		t.Error("Error style should have foreground color when color=always")
	}
}

func TestResolveColorMode_NeverNoANSI(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, ResolveColorMode(ColorNever, true))

	printer.Section("Fork Setup Analysis")
	printer.Line(MarkOK, "Origin remote configured: true")
	printer.Error(NewUserError("not in a git repository"))

	if out := buf.String(); containsANSI(out) {
		t.Errorf("--color never should produce no ANSI codes, got: %q", out)
	}
}

// containsANSI checks if a string contains ANSI escape sequences.
func containsANSI(s string) bool {
	for i := range len(s) - 1 {
		if s[i] == '\033' && s[i+1] == '[' {
			return true
		}
	}
	return false
}
