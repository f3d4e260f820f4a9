package dashboard

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/NobPolish/hackagent/internal/tui/styles"
	"github.com/NobPolish/hackagent/internal/tui/theme"
)

// Severity classifies a toast and fixes how long it stays up.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

// Timeout returns how long a toast of this severity is displayed.
func (s Severity) Timeout() time.Duration {
	switch s {
	case SeverityError:
		return 5 * time.Second
	case SeverityWarning:
		return 4 * time.Second
	default:
		return 3 * time.Second
	}
}

// String returns a short lower-case name for the severity.
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Toast is one transient notification line.
type Toast struct {
	Severity Severity
	Text     string
	expires  time.Time
}

// ToastStack holds the live toasts. Push is fire-and-forget: nothing blocks
// on a toast, and expiry happens on the animation tick.
type ToastStack struct {
	toasts []Toast
	now    func() time.Time
}

// NewToastStack creates an empty stack on the real clock.
func NewToastStack() *ToastStack {
	return &ToastStack{now: time.Now}
}

// Push appends a toast with its severity's timeout.
func (ts *ToastStack) Push(sev Severity, text string) {
	if text == "" {
		return
	}
	ts.toasts = append(ts.toasts, Toast{
		Severity: sev,
		Text:     text,
		expires:  ts.now().Add(sev.Timeout()),
	})
}

// Prune drops expired toasts. Called from the animation tick.
func (ts *ToastStack) Prune() {
	live := ts.toasts[:0]
	for _, t := range ts.toasts {
		if ts.now().Before(t.expires) {
			live = append(live, t)
		}
	}
	ts.toasts = live
}

// Len returns the number of live toasts.
func (ts *ToastStack) Len() int { return len(ts.toasts) }

// Toasts returns the live toasts, oldest first.
func (ts *ToastStack) Toasts() []Toast { return ts.toasts }

func severityColor(t theme.Theme, sev Severity) lipgloss.Color {
	switch sev {
	case SeveritySuccess:
		return t.Success
	case SeverityWarning:
		return t.Warning
	case SeverityError:
		return t.Error
	default:
		return t.Info
	}
}

// View renders the stack as stacked single-line banners, newest last. Each
// line leads with a severity badge so errors stand out even without color.
func (ts *ToastStack) View(t theme.Theme, width int) string {
	if len(ts.toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(ts.toasts))
	for _, toast := range ts.toasts {
		color := severityColor(t, toast.Severity)
		badge := styles.TextBadge(toast.Severity.String(), color, t.Base,
			styles.BadgeOptions{Style: styles.BadgeStyleCompact, Bold: true})
		text := styles.Truncate(toast.Text, width-4-len(toast.Severity.String()))
		line := badge + lipgloss.NewStyle().
			Foreground(color).
			Bold(toast.Severity == SeverityError).
			Render(" "+text)
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
