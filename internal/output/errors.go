package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/NobPolish/hackagent/internal/tui/theme"
)

// CLIError represents a structured CLI error with remediation hints.
type CLIError struct {
	Message string // what failed
	Cause   string // why it failed (optional)
	Hint    string // fastest command/action to fix it (optional)
	Code    string // error code for programmatic handling (optional)
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewCLIError creates a new CLI error with just a message.
func NewCLIError(msg string) *CLIError {
	return &CLIError{Message: msg}
}

// WithCause adds a cause to the error.
func (e *CLIError) WithCause(cause string) *CLIError {
	e.Cause = cause
	return e
}

// WithHint adds a remediation hint to the error.
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// WithCode adds an error code to the error.
func (e *CLIError) WithCode(code string) *CLIError {
	e.Code = code
	return e
}

// ErrorResponse is the standard JSON error format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// SuccessResponse is a simple success indicator.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// NewSuccess creates a success response.
func NewSuccess(msg string) SuccessResponse {
	return SuccessResponse{Success: true, Message: msg}
}

func isStderrTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// FormatCLIError formats a CLIError for terminal output with colors.
// Returns plain text if stderr is not a terminal or NO_COLOR is set.
func FormatCLIError(e *CLIError) string {
	useColor := isStderrTerminal() && os.Getenv("NO_COLOR") == ""

	var sb strings.Builder
	if useColor {
		t := theme.Current()
		errorStyle := lipgloss.NewStyle().Foreground(t.Error).Bold(true)
		causeStyle := lipgloss.NewStyle().Foreground(t.Subtext)
		hintStyle := lipgloss.NewStyle().Foreground(t.Info)
		codeStyle := lipgloss.NewStyle().Foreground(t.Overlay)

		sb.WriteString(errorStyle.Render("Error: "))
		sb.WriteString(e.Message)
		if e.Code != "" {
			sb.WriteString(" ")
			sb.WriteString(codeStyle.Render("[" + e.Code + "]"))
		}
		sb.WriteString("\n")

		if e.Cause != "" {
			sb.WriteString(causeStyle.Render("  Cause: "))
			sb.WriteString(e.Cause)
			sb.WriteString("\n")
		}
		if e.Hint != "" {
			sb.WriteString(hintStyle.Render("  Hint: "))
			sb.WriteString(e.Hint)
			sb.WriteString("\n")
		}
		return sb.String()
	}

	sb.WriteString("Error: ")
	sb.WriteString(e.Message)
	if e.Code != "" {
		sb.WriteString(" [" + e.Code + "]")
	}
	sb.WriteString("\n")
	if e.Cause != "" {
		sb.WriteString("  Cause: " + e.Cause + "\n")
	}
	if e.Hint != "" {
		sb.WriteString("  Hint: " + e.Hint + "\n")
	}
	return sb.String()
}

// PrintCLIError prints a CLIError to stderr with formatting.
func PrintCLIError(e *CLIError) {
	fmt.Fprint(os.Stderr, FormatCLIError(e))
}

// PrintCLIErrorOrJSON prints a CLIError to stderr (text) or stdout (JSON).
func PrintCLIErrorOrJSON(e *CLIError, jsonMode bool) error {
	if jsonMode {
		return WriteJSON(os.Stdout, ErrorResponse{
			Error:   e.Message,
			Code:    e.Code,
			Details: e.Cause,
			Hint:    e.Hint,
		}, true)
	}
	PrintCLIError(e)
	return e
}

// Common remediation hints.
var (
	HintConfigureKey  = "Run 'hackagent config set api_key <key>'; keys live at https://hackagent.dev/settings"
	HintCheckKey      = "Verify the key with 'hackagent config show' or create a fresh one at https://hackagent.dev/settings"
	HintCheckNetwork  = "Check connectivity to the platform; 'hackagent config show' prints the base URL in use"
	HintConfigInvalid = "Check config syntax with 'hackagent config show' or edit ~/.config/hackagent/config.toml"
	HintListResults   = "Run 'hackagent results list' to see result IDs"
	HintListTemplates = "Run 'hackagent attacks list' or drop .md templates into ~/.config/hackagent/attacks"
)

// ConfigMissingError reports an absent API key.
func ConfigMissingError() *CLIError {
	return NewCLIError("no API key configured").
		WithCode("CONFIG_MISSING").
		WithHint(HintConfigureKey)
}

// AuthFailedError reports a rejected API key.
func AuthFailedError() *CLIError {
	return NewCLIError("authentication failed (401)").
		WithCode("AUTH_FAILED").
		WithHint(HintCheckKey)
}

// ResultNotFoundError reports an unknown result id.
func ResultNotFoundError(id string) *CLIError {
	return NewCLIError(fmt.Sprintf("result %q not found", id)).
		WithCode("RESULT_NOT_FOUND").
		WithHint(HintListResults)
}
