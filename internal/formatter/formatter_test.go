package formatter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/callx/internal/models"
	"github.com/desertthunder/callx/internal/shared"
	tu "github.com/desertthunder/callx/internal/testing"
)

func testData() ([]*models.Call, []models.Attribute) {
	first := tu.SampleCall("one@host")
	first.Sequence = 1
	second := tu.SampleCall("two@host")
	second.Sequence = 2
	second.From = "sip:carol|ops@example.com"

	attrs := []models.Attribute{
		{ID: 0, Name: "index", Title: "Idx", Width: 4},
		{ID: 1, Name: "sipfrom", Title: "SIP From", Width: 12},
		{ID: 2, Name: "state", Title: "Call State", Width: 12},
	}
	return []*models.Call{first, second}, attrs
}

func TestExporters(t *testing.T) {
	calls, attrs := testData()

	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(calls, attrs)
		if err != nil {
			t.Fatalf("failed to export CSV: %v", err)
		}

		records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		if err != nil {
			t.Fatalf("failed to parse CSV: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		if strings.Join(records[0], ",") != "Idx,SIP From,Call State" {
			t.Errorf("unexpected header %v", records[0])
		}
		if records[1][0] != "1" || records[1][1] != "sip:alice@example.com" || records[1][2] != "COMPLETED" {
			t.Errorf("unexpected first record %v", records[1])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(calls, attrs)
		if err != nil {
			t.Fatalf("failed to export Markdown: %v", err)
		}
		md := string(data)

		if !strings.Contains(md, "**Calls**: 2") {
			t.Error("expected call count")
		}
		if !strings.Contains(md, "| Idx | SIP From | Call State |") {
			t.Error("expected table header")
		}
		if !strings.Contains(md, `sip:carol\|ops@example.com`) {
			t.Error("expected pipes to be escaped")
		}
	})

	t.Run("ExportToMarkdown without columns", func(t *testing.T) {
		data, err := ExportToMarkdown(calls, nil)
		if err != nil {
			t.Fatalf("failed to export Markdown: %v", err)
		}
		if strings.Contains(string(data), "|") {
			t.Error("expected no table without columns")
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(calls, attrs)
		if err != nil {
			t.Fatalf("failed to export JSON: %v", err)
		}

		var rows []map[string]string
		if err := json.Unmarshal(data, &rows); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(rows) != 2 || rows[1]["index"] != "2" || len(rows[0]) != 3 {
			t.Errorf("unexpected rows %v", rows)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(calls, attrs)
		if err != nil {
			t.Fatalf("failed to export text: %v", err)
		}

		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}
		if !strings.HasPrefix(lines[0], "Idx  SIP From     Call State") {
			t.Errorf("unexpected header line %q", lines[0])
		}
		if !strings.Contains(lines[1], "sip:alice@e…") {
			t.Errorf("expected truncated from column, got %q", lines[1])
		}
	})
}

func TestParseFormat(t *testing.T) {
	tc := []struct {
		in   string
		want Format
	}{
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"md", FormatMarkdown},
		{"markdown", FormatMarkdown},
		{"json", FormatJSON},
		{"txt", FormatText},
		{"text", FormatText},
	}

	for _, tt := range tc {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, shared.ErrInvalidFlag) {
		t.Errorf("expected ErrInvalidFlag, got %v", err)
	}
}

func TestCell(t *testing.T) {
	tc := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "pads", in: "ab", width: 4, want: "ab  "},
		{name: "exact", in: "abcd", width: 4, want: "abcd"},
		{name: "truncates", in: "abcdef", width: 4, want: "abc…"},
		{name: "zero width", in: "abc", width: 0, want: ""},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cell(tt.in, tt.width); got != tt.want {
				t.Errorf("Cell(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestWriteExport(t *testing.T) {
	calls, attrs := testData()

	t.Run("WithCustomPath", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		got, err := WriteExport(FormatCSV, calls, attrs, path)
		if err != nil {
			t.Fatalf("failed to write export: %v", err)
		}
		if got != path {
			t.Errorf("expected path %s, got %s", path, got)
		}
		if content := tu.MustReadFile(t, path); !strings.HasPrefix(content, "Idx,SIP From,Call State") {
			t.Errorf("unexpected content %q", content)
		}
	})

	t.Run("UnwritablePath", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.txt")
		if _, err := WriteExport(FormatText, calls, attrs, path); err == nil {
			t.Error("expected an error writing into a missing directory")
		}
	})
}
