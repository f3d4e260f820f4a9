package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NobPolish/hackagent/internal/config"
	"github.com/NobPolish/hackagent/internal/tui/styles"
)

// settingsTab shows the effective configuration and edits the API key in
// place. It holds no remote data, so it is deliberately not Refreshable.
type settingsTab struct {
	session *Session
	cfg     *config.Config

	input   textinput.Model
	editing bool
}

// settingsSavedMsg reports the outcome of an in-place config save.
type settingsSavedMsg struct {
	err error
}

// NewSettingsTab builds the settings tab.
func NewSettingsTab(s *Session, cfg *config.Config) Tab {
	ti := textinput.New()
	ti.Placeholder = "paste API key"
	ti.EchoMode = textinput.EchoPassword
	ti.CharLimit = 128
	ti.Width = 48

	return &settingsTab{
		session: s,
		cfg:     cfg,
		input:   ti,
	}
}

func (t *settingsTab) ID() string    { return TabSettings }
func (t *settingsTab) Title() string { return "Settings" }

func (t *settingsTab) Mount() tea.Cmd { return nil }

func (t *settingsTab) Unmount() {
	t.editing = false
	t.input.Blur()
	t.input.Reset()
}

func (t *settingsTab) HandleMsg(msg tea.Msg) (tea.Cmd, Notice) {
	switch m := msg.(type) {
	case settingsSavedMsg:
		if m.err != nil {
			return nil, Notice{Severity: SeverityError, Text: "Saving config: " + m.err.Error()}
		}
		return nil, Notice{Severity: SeveritySuccess, Text: "API key saved."}
	case ConfigReloadedMsg:
		t.cfg = m.Config
	}
	return nil, Notice{}
}

// editingInput reports whether key presses currently belong to the text
// field. The shell checks this before treating letters as tab shortcuts.
func (t *settingsTab) editingInput() bool { return t.editing }

func (t *settingsTab) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if t.editing {
		switch msg.String() {
		case "enter":
			value := strings.TrimSpace(t.input.Value())
			t.editing = false
			t.input.Blur()
			t.input.Reset()
			if value == "" {
				return nil
			}
			return t.save(value)
		case "esc":
			t.editing = false
			t.input.Blur()
			t.input.Reset()
			return nil
		default:
			var cmd tea.Cmd
			t.input, cmd = t.input.Update(msg)
			return cmd
		}
	}

	switch msg.String() {
	case "e", "enter":
		t.editing = true
		return t.input.Focus()
	}
	return nil
}

// save persists the key and swaps the live client so the very next fetch
// uses it, without waiting for the file watcher to fire.
func (t *settingsTab) save(key string) tea.Cmd {
	if err := t.cfg.Set("api_key", key); err != nil {
		return func() tea.Msg { return settingsSavedMsg{err: err} }
	}
	err := t.cfg.Save(t.session.ConfigPath())
	if err == nil {
		t.session.Reconfigure(t.cfg)
	}
	return func() tea.Msg { return settingsSavedMsg{err: err} }
}

func (t *settingsTab) View(f Frame) string {
	label := lipgloss.NewStyle().Foreground(f.Theme.Subtext).Width(16)
	value := lipgloss.NewStyle().Foreground(f.Theme.Text)

	row := func(name, val string) string {
		return label.Render(name) + value.Render(styles.Truncate(val, f.Width-18))
	}

	path := t.session.ConfigPath()
	if path == "" {
		path = config.DefaultPath()
	}

	lines := []string{
		row("Config file", path),
		row("Base URL", t.cfg.BaseURL),
		row("API key", t.cfg.RedactedKey()),
		row("Output format", t.cfg.OutputFormat),
		row("Timeout", fmt.Sprintf("%ds", t.cfg.TimeoutSeconds)),
		"",
		row("Auto-refresh", fmt.Sprintf("%t", t.cfg.Refresh.Enabled)),
		row("  overview", t.cfg.OverviewInterval().String()),
		row("  agents", t.cfg.AgentsInterval().String()),
		row("  results", t.cfg.ResultsInterval().String()),
		row("  keys", t.cfg.KeysInterval().String()),
		"",
		row("Template dirs", strings.Join(t.cfg.Attacks.TemplateDirs, ", ")),
		"",
	}

	if t.editing {
		prompt := lipgloss.NewStyle().Foreground(f.Theme.Primary).Bold(true).Render("New API key")
		hint := lipgloss.NewStyle().Foreground(f.Theme.Overlay).Render("enter to save, esc to cancel")
		lines = append(lines, prompt, t.input.View(), hint)
	} else {
		lines = append(lines, styles.KeyHint("e", "edit API key", f.Theme.Primary, f.Theme.Subtext))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
