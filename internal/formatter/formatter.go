// package formatter renders stored calls with a column layout as CSV, Markdown, JSON or plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/desertthunder/callx/internal/models"
	"github.com/desertthunder/callx/internal/shared"
)

// Format names an export encoding.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
	FormatText     Format = "txt"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatMarkdown, FormatJSON, FormatText:
		return f, nil
	case "markdown":
		return FormatMarkdown, nil
	case "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: unsupported format %q", shared.ErrInvalidFlag, s)
	}
}

// Export renders calls in the given format using attrs as columns.
func Export(format Format, calls []*models.Call, attrs []models.Attribute) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ExportToCSV(calls, attrs)
	case FormatMarkdown:
		return ExportToMarkdown(calls, attrs)
	case FormatJSON:
		return ExportToJSON(calls, attrs)
	case FormatText:
		return ExportToText(calls, attrs)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", shared.ErrInvalidFlag, format)
	}
}

// ExportToCSV writes a header of attribute titles followed by one record per call
func ExportToCSV(calls []*models.Call, attrs []models.Attribute) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(titles(attrs)); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, call := range calls {
		if err := writer.Write(values(call, attrs)); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders calls as a Markdown table
func ExportToMarkdown(calls []*models.Call, attrs []models.Attribute) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Calls\n\n")
	buf.WriteString(fmt.Sprintf("**Calls**: %d\n\n", len(calls)))
	if len(attrs) == 0 {
		return buf.Bytes(), nil
	}

	buf.WriteString("| " + strings.Join(titles(attrs), " | ") + " |\n")
	buf.WriteString("|" + strings.Repeat(" --- |", len(attrs)) + "\n")
	for _, call := range calls {
		cells := values(call, attrs)
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(c, "|", `\|`)
		}
		buf.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	return buf.Bytes(), nil
}

// ExportToJSON renders calls as an array of token to value objects
func ExportToJSON(calls []*models.Call, attrs []models.Attribute) ([]byte, error) {
	rows := make([]map[string]string, 0, len(calls))
	for _, call := range calls {
		row := make(map[string]string, len(attrs))
		for _, a := range attrs {
			row[a.Name] = call.Value(a.Name)
		}
		rows = append(rows, row)
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// ExportToText renders calls as fixed-width columns sized by each attribute's preferred width
func ExportToText(calls []*models.Call, attrs []models.Attribute) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(textRow(titles(attrs), attrs))
	for _, call := range calls {
		buf.WriteString(textRow(values(call, attrs), attrs))
	}

	return buf.Bytes(), nil
}

// WriteExport renders calls and writes them to path.
//
// Defaults to calls.<format> as the filename.
func WriteExport(format Format, calls []*models.Call, attrs []models.Attribute, path string) (string, error) {
	if path == "" {
		path = "calls." + string(format)
	}

	data, err := Export(format, calls, attrs)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

// Cell pads or truncates s to exactly width display cells.
func Cell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-ansi.StringWidth(s))
}

func textRow(cells []string, attrs []models.Attribute) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = Cell(c, attrs[i].Width)
	}
	return strings.TrimRight(strings.Join(parts, " "), " ") + "\n"
}

func titles(attrs []models.Attribute) []string {
	out := make([]string, len(attrs))
	for i, a := range attrs {
		out[i] = a.Title
	}
	return out
}

func values(call *models.Call, attrs []models.Attribute) []string {
	out := make([]string, len(attrs))
	for i, a := range attrs {
		out[i] = call.Value(a.Name)
	}
	return out
}
