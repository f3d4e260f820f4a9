package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in     string
		want   Format
		wantOK bool
	}{
		{"table", FormatTable, true},
		{"text", FormatTable, true},
		{"json", FormatJSON, true},
		{"JSON", FormatJSON, true},
		{"csv", FormatCSV, true},
		{" csv ", FormatCSV, true},
		{"yaml", FormatTable, false},
		{"", FormatTable, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseFormat(tc.in)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("ParseFormat(%q) = (%v, %t), want (%v, %t)", tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestDetectFormatPriority(t *testing.T) {
	t.Setenv("HACKAGENT_OUTPUT_FORMAT", "csv")
	if got := DetectFormat("json", "table"); got != FormatJSON {
		t.Errorf("flag should win, got %v", got)
	}
	if got := DetectFormat("", "table"); got != FormatCSV {
		t.Errorf("env should beat config, got %v", got)
	}

	t.Setenv("HACKAGENT_OUTPUT_FORMAT", "")
	if got := DetectFormat("", "csv"); got != FormatCSV {
		t.Errorf("config should apply, got %v", got)
	}
}

func TestFormatterListTable(t *testing.T) {
	var buf bytes.Buffer
	f := New(WithFormat(FormatTable), WithWriter(&buf))

	err := f.List(
		[]string{"Name", "Status"},
		[][]string{{"alpha", "active"}, {"beta-long-name", "inactive"}},
		nil,
	)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Name", "Status", "alpha", "beta-long-name", "---"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatterListJSON(t *testing.T) {
	var buf bytes.Buffer
	f := New(WithFormat(FormatJSON), WithWriter(&buf))

	type row struct {
		Name string `json:"name"`
	}
	if err := f.List(nil, nil, []row{{Name: "alpha"}}); err != nil {
		t.Fatalf("List() error: %v", err)
	}

	var got []row
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 1 || got[0].Name != "alpha" {
		t.Errorf("decoded %+v", got)
	}
}

func TestFormatterListCSV(t *testing.T) {
	var buf bytes.Buffer
	f := New(WithFormat(FormatCSV), WithWriter(&buf))

	err := f.List(
		[]string{"name", "status"},
		[][]string{{"alpha", "active"}, {"with,comma", "ok"}},
		nil,
	)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "name,status" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], `"with,comma"`) {
		t.Errorf("comma cell not quoted: %q", lines[2])
	}
}

func TestTableAlignsMultibyte(t *testing.T) {
	var buf bytes.Buffer
	tab := NewTable(&buf, "Name", "Status")
	tab.AddRow("héllo", "ok")
	tab.AddRow("x", "fail")
	tab.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	// Status column starts at the same offset in both data rows.
	if strings.Index(lines[2], "ok") != strings.Index(lines[3], "fail") {
		t.Errorf("columns misaligned:\n%s", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"this is far too long", 10, "this is..."},
		{"abcdef", 3, "abc"},
	}
	for _, tc := range cases {
		if got := Truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestCountStr(t *testing.T) {
	if got := CountStr(1, "agent", "agents"); got != "1 agent" {
		t.Errorf("got %q", got)
	}
	if got := CountStr(3, "agent", "agents"); got != "3 agents" {
		t.Errorf("got %q", got)
	}
}

func TestCLIErrorChaining(t *testing.T) {
	err := NewCLIError("authentication failed").
		WithCause("the platform returned 401").
		WithHint("rotate the key").
		WithCode("AUTH_FAILED")

	if err.Error() != "authentication failed" {
		t.Errorf("Error() = %q", err.Error())
	}

	formatted := FormatCLIError(err)
	for _, want := range []string{"authentication failed", "AUTH_FAILED", "Cause:", "Hint:"} {
		if !strings.Contains(formatted, want) {
			t.Errorf("formatted error missing %q:\n%s", want, formatted)
		}
	}
}

func TestConfigMissingErrorHint(t *testing.T) {
	err := ConfigMissingError()
	if err.Code != "CONFIG_MISSING" {
		t.Errorf("code = %q", err.Code)
	}
	if !strings.Contains(err.Hint, "config set api_key") {
		t.Errorf("hint = %q", err.Hint)
	}
}
