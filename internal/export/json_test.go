package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/forkcheck/internal/advisor"
	"github.com/gorewood/forkcheck/internal/output"
)

func TestRender_JSON(t *testing.T) {
	data, err := Render(readyReport(), FormatJSONName)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var got advisor.Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, data)
	}
	if got.Fork.Verdict != advisor.ForkReady || got.Branch != "feature/login" {
		t.Errorf("decoded report = %+v", got)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(readyReport(), "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestWriteFile(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{FormatJSONName, `"verdict": "ready"`},
		{FormatMarkdownName, "schema: forkcheck.report/v1"},
		{"md", "# Federated DDoS Detection fork check"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "report.out")
			if err := WriteFile(readyReport(), tt.format, path); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading output: %v", err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("file missing %q:\n%s", tt.want, data)
			}
		})
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "report.md")

	err := WriteFile(readyReport(), FormatMarkdownName, path)
	if code := output.GetExitCode(err); code != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", code, output.ExitSystemError)
	}
}
