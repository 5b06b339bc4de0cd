package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gorewood/forkcheck/internal/advisor"
	"github.com/gorewood/forkcheck/internal/output"
)

// Export formats.
const (
	FormatJSONName     = "json"
	FormatMarkdownName = "markdown"
)

// Render returns the report in the named format.
func Render(report *advisor.Report, format string) ([]byte, error) {
	switch format {
	case FormatJSONName:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, output.NewSystemError(fmt.Sprintf("failed to marshal report: %v", err))
		}
		return append(data, '\n'), nil
	case FormatMarkdownName, "md":
		return []byte(FormatMarkdown(report)), nil
	default:
		return nil, output.NewUserError(fmt.Sprintf("unknown format %q (want %s or %s)", format, FormatJSONName, FormatMarkdownName))
	}
}

// WriteFile renders the report in the named format and writes it to path.
func WriteFile(report *advisor.Report, format, path string) error {
	data, err := Render(report, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return output.NewSystemError(fmt.Sprintf("failed to write file %s: %v", path, err))
	}
	return nil
}
