// Package output provides unified output formatting for the one-shot CLI
// commands: human tables, machine JSON, and CSV. All commands write through
// this package so formats stay consistent.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Format represents the output format type.
type Format int

const (
	// FormatTable is human-readable aligned text (default on a terminal).
	FormatTable Format = iota
	// FormatJSON is machine-readable JSON output.
	FormatJSON
	// FormatCSV is comma-separated values.
	FormatCSV
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return "table"
	}
}

// ParseFormat maps a format name to a Format. Unknown names report ok=false.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "text":
		return FormatTable, true
	case "json":
		return FormatJSON, true
	case "csv":
		return FormatCSV, true
	default:
		return FormatTable, false
	}
}

// Formatter handles output formatting for commands.
type Formatter struct {
	format Format
	writer io.Writer
	pretty bool // for JSON: whether to indent
}

// Option is a functional option for Formatter.
type Option func(*Formatter)

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(f *Formatter) { f.format = format }
}

// WithWriter sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(f *Formatter) { f.writer = w }
}

// WithPretty sets whether JSON should be indented.
func WithPretty(pretty bool) Option {
	return func(f *Formatter) { f.pretty = pretty }
}

// New creates a new Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		format: FormatTable,
		writer: os.Stdout,
		pretty: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format returns the current output format.
func (f *Formatter) Format() Format { return f.format }

// IsJSON returns true if the output format is JSON.
func (f *Formatter) IsJSON() bool { return f.format == FormatJSON }

// Writer returns the output writer.
func (f *Formatter) Writer() io.Writer { return f.writer }

// List writes a listing in the formatter's format: an aligned table, CSV
// rows, or the JSON value.
func (f *Formatter) List(headers []string, rows [][]string, jsonValue interface{}) error {
	switch f.format {
	case FormatJSON:
		return WriteJSON(f.writer, jsonValue, f.pretty)
	case FormatCSV:
		return WriteCSV(f.writer, headers, rows)
	default:
		t := NewTable(f.writer, headers...)
		for _, row := range rows {
			t.AddRow(row...)
		}
		t.Render()
		return nil
	}
}

// DetectFormat determines the output format.
// Priority: explicit --output flag > HACKAGENT_OUTPUT_FORMAT > config file
// value > pipe detection > table.
func DetectFormat(flagValue, configValue string) Format {
	if f, ok := ParseFormat(flagValue); ok && flagValue != "" {
		return f
	}
	if f, ok := ParseFormat(os.Getenv("HACKAGENT_OUTPUT_FORMAT")); ok && os.Getenv("HACKAGENT_OUTPUT_FORMAT") != "" {
		return f
	}
	if f, ok := ParseFormat(configValue); ok && configValue != "" {
		return f
	}
	// Piped output defaults to JSON: hackagent agents list | jq .
	if !IsTerminal() {
		return FormatJSON
	}
	return FormatTable
}

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
