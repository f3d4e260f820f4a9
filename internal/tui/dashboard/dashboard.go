// Package dashboard is the interactive TUI shell: a tab bar over the
// platform's entities, with per-tab auto-refresh, toast notifications, and
// live config reload.
package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NobPolish/hackagent/internal/api"
	"github.com/NobPolish/hackagent/internal/config"
	"github.com/NobPolish/hackagent/internal/notify"
	"github.com/NobPolish/hackagent/internal/tui/components"
	"github.com/NobPolish/hackagent/internal/tui/icons"
	"github.com/NobPolish/hackagent/internal/tui/styles"
	"github.com/NobPolish/hackagent/internal/tui/theme"
)

// animInterval drives spinner frames and toast expiry.
const animInterval = 100 * time.Millisecond

type animTickMsg time.Time

// ConfigReloadedMsg is sent from the config file watcher when the config
// changes on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Overview  key.Binding
	Agents    key.Binding
	Results   key.Binding
	Attacks   key.Binding
	Keys      key.Binding
	Settings  key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Refresh   key.Binding
	Up        key.Binding
	Down      key.Binding
	ClearSel  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Overview: key.NewBinding(key.WithKeys("d", "1"), key.WithHelp("d", "overview")),
		Agents:   key.NewBinding(key.WithKeys("a", "2"), key.WithHelp("a", "agents")),
		Results:  key.NewBinding(key.WithKeys("r", "3"), key.WithHelp("r", "results")),
		Attacks:  key.NewBinding(key.WithKeys("k", "4"), key.WithHelp("k", "attacks")),
		Keys:     key.NewBinding(key.WithKeys("K", "5"), key.WithHelp("K", "keys")),
		Settings: key.NewBinding(key.WithKeys("c", "6"), key.WithHelp("c", "settings")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Refresh:  key.NewBinding(key.WithKeys("f5", "ctrl+r"), key.WithHelp("f5", "refresh")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "select up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "select down")),
		ClearSel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the dashboard shell.
type Model struct {
	cfg     *config.Config
	session *Session
	keys    KeyMap

	tabs   []Tab
	active int

	width  int
	height int
	tick   int

	spinner  components.Spinner
	toasts   *ToastStack
	notifier *notify.Notifier
	showHelp bool

	// dispatch runs system notifications off the event loop; tests replace
	// it to observe events synchronously.
	dispatch func(notify.Event)

	theme  theme.Theme
	styles theme.Styles
	icons  icons.IconSet
}

// New builds the dashboard from the loaded config. cfgPath is where edits
// made from the settings tab are persisted ("" for the default path).
func New(cfg *config.Config, cfgPath string) *Model {
	session := NewSession(cfg, cfgPath)
	t := theme.Current()

	sp := components.NewSpinner()
	sp.Gradient = true

	m := &Model{
		cfg:     cfg,
		session: session,
		keys:    DefaultKeyMap(),
		tabs: []Tab{
			NewOverviewTab(session, cfg),
			NewAgentsTab(session, cfg),
			NewResultsTab(session, cfg),
			NewAttacksTab(cfg),
			NewKeysTab(session, cfg),
			NewSettingsTab(session, cfg),
		},
		spinner:  sp,
		toasts:   NewToastStack(),
		notifier: notify.New(cfg.Notifications),
		theme:    t,
		styles:   theme.NewStyles(t),
		icons:    icons.Current(),
	}
	m.dispatch = func(ev notify.Event) {
		go m.notifier.Notify(ev)
	}
	return m
}

// Session returns the shared platform session.
func (m *Model) Session() *Session { return m.session }

// ActiveTab returns the currently mounted tab.
func (m *Model) ActiveTab() Tab { return m.tabs[m.active] }

// Init mounts the first tab and starts the animation clock.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tabs[m.active].Mount(), animTick())
}

func animTick() tea.Cmd {
	return tea.Tick(animInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Update is the event loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case animTickMsg:
		m.tick++
		m.spinner.Frame = m.tick
		m.toasts.Prune()
		return m, animTick()

	case ConfigReloadedMsg:
		return m, m.applyConfig(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.broadcast(msg)
}

// broadcast fans a lifecycle message out to every tab. Epoch and tab-id
// guards inside each tab drop anything not addressed to it.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, tab := range m.tabs {
		cmd, notice := tab.HandleMsg(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if notice.Text != "" {
			m.toasts.Push(notice.Severity, notice.Text)
			m.notifySystem(notice)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// notifySystem mirrors connectivity failures to the system-level channels
// (desktop, webhook, shell hook, log). In-app toasts cover everything else.
func (m *Model) notifySystem(n Notice) {
	switch n.Kind {
	case api.KindTimeout, api.KindNetworkError, api.KindServerError:
		m.dispatch(notify.NewAPIUnreachableEvent(m.session.Client().BaseURL(), n.Text))
	case api.KindAuthFailed:
		m.dispatch(notify.NewAuthFailedEvent(m.session.Client().BaseURL()))
	}
}

// applyConfig swaps the live client and refreshes the active tab so a newly
// pasted API key takes effect immediately.
func (m *Model) applyConfig(msg ConfigReloadedMsg) tea.Cmd {
	m.cfg = msg.Config
	m.session.Reconfigure(msg.Config)
	m.notifier = notify.New(msg.Config.Notifications)
	m.toasts.Push(SeverityInfo, "Configuration reloaded.")

	cmds := []tea.Cmd{m.broadcast(msg)}
	if r, ok := m.tabs[m.active].(Refreshable); ok {
		cmds = append(cmds, r.Refresh())
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Text input owns the keyboard while editing; only quit breaks through.
	if st, ok := m.tabs[m.active].(*settingsTab); ok && st.editingInput() {
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		return st.HandleKey(msg)
	}

	if m.showHelp {
		m.showHelp = false
		if key.Matches(msg, m.keys.Quit) {
			return tea.Quit
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return nil
	case key.Matches(msg, m.keys.Overview):
		return m.SwitchTab(TabOverview)
	case key.Matches(msg, m.keys.Agents):
		return m.SwitchTab(TabAgents)
	case key.Matches(msg, m.keys.Results):
		return m.SwitchTab(TabResults)
	case key.Matches(msg, m.keys.Attacks):
		return m.SwitchTab(TabAttacks)
	case key.Matches(msg, m.keys.Keys):
		return m.SwitchTab(TabKeys)
	case key.Matches(msg, m.keys.Settings):
		return m.SwitchTab(TabSettings)
	case key.Matches(msg, m.keys.NextTab):
		return m.cycleTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		return m.cycleTab(-1)
	case key.Matches(msg, m.keys.Refresh):
		return m.refreshActive()
	}

	return m.tabs[m.active].HandleKey(msg)
}

// SwitchTab activates the tab with the given id. Unknown ids are ignored, and
// switching to the already-active tab is a no-op. The outgoing tab is
// unmounted before the incoming one mounts, so its timers disarm and any
// in-flight fetch lands in a stale epoch.
func (m *Model) SwitchTab(id string) tea.Cmd {
	for i, tab := range m.tabs {
		if tab.ID() != id {
			continue
		}
		if i == m.active {
			return nil
		}
		m.tabs[m.active].Unmount()
		m.active = i
		return m.tabs[i].Mount()
	}
	return nil
}

func (m *Model) cycleTab(delta int) tea.Cmd {
	next := (m.active + delta + len(m.tabs)) % len(m.tabs)
	return m.SwitchTab(m.tabs[next].ID())
}

// refreshActive manually refreshes the active tab if it supports it.
func (m *Model) refreshActive() tea.Cmd {
	if r, ok := m.tabs[m.active].(Refreshable); ok {
		return r.Refresh()
	}
	return nil
}

// View renders the full frame: header, toasts, active tab, help bar.
func (m *Model) View() string {
	if m.width == 0 {
		return components.LoadingState("Connecting to terminal…", 0)
	}
	if m.showHelp {
		return m.helpView()
	}

	header := m.headerView()
	footer := m.footerView()
	toasts := m.toasts.View(m.theme, m.width)

	used := lipgloss.Height(header) + lipgloss.Height(footer) + 1
	if toasts != "" {
		used += lipgloss.Height(toasts)
	}

	frame := Frame{
		Width:   m.width - 2,
		Height:  m.height - used,
		Theme:   m.theme,
		Styles:  m.styles,
		Icons:   m.icons,
		Tick:    m.tick,
		Spinner: m.spinner.View(),
	}
	body := lipgloss.NewStyle().Padding(0, 1).Render(m.tabs[m.active].View(frame))

	sections := []string{header}
	if toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, body, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) headerView() string {
	title := styles.Shimmer(" HackAgent ", m.tick/3)

	var tabsBar []string
	for i, tab := range m.tabs {
		label := fmt.Sprintf("%s %s", m.icons.TabIcon(tab.ID()), tab.Title())
		style := lipgloss.NewStyle().Foreground(m.theme.Overlay).Padding(0, 1)
		if i == m.active {
			style = lipgloss.NewStyle().
				Foreground(m.theme.Base).
				Background(m.theme.Primary).
				Bold(true).
				Padding(0, 1)
			if lt, ok := tab.(loadingTab); ok && lt.Loading() {
				label += " " + m.spinner.View()
			}
		}
		tabsBar = append(tabsBar, style.Render(label))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, tabsBar...)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", bar),
		styles.Divider(m.width, "default", m.theme.Surface1),
	)
}

func (m *Model) footerView() string {
	hints := []string{
		styles.KeyHint("tab", "switch", m.theme.Primary, m.theme.Subtext),
		styles.KeyHint("↑↓", "select", m.theme.Primary, m.theme.Subtext),
		styles.KeyHint("f5", "refresh", m.theme.Primary, m.theme.Subtext),
		styles.KeyHint("?", "help", m.theme.Primary, m.theme.Subtext),
		styles.KeyHint("q", "quit", m.theme.Primary, m.theme.Subtext),
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(
		lipgloss.JoinHorizontal(lipgloss.Center, joinSpaced(hints, "  ")...))
}

func joinSpaced(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}

func (m *Model) helpView() string {
	title := styles.GradientText("HackAgent Dashboard")
	rows := [][2]string{
		{"d / 1", "Overview"},
		{"a / 2", "Agents"},
		{"r / 3", "Results"},
		{"k / 4", "Attack templates"},
		{"K / 5", "API keys"},
		{"c / 6", "Settings"},
		{"tab / shift+tab", "Cycle tabs"},
		{"f5 / ctrl+r", "Refresh active tab"},
		{"↑ / ↓", "Move selection"},
		{"esc", "Clear selection"},
		{"?", "Toggle this help"},
		{"q / ctrl+c", "Quit"},
	}

	keyStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Width(18)
	descStyle := lipgloss.NewStyle().Foreground(m.theme.Text)

	lines := []string{title, ""}
	for _, r := range rows {
		lines = append(lines, keyStyle.Render(r[0])+descStyle.Render(r[1]))
	}
	lines = append(lines, "",
		lipgloss.NewStyle().Foreground(m.theme.Overlay).Render("press any key to close"))

	box := m.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Run starts the dashboard and blocks until quit. The config file is watched
// for the whole session so `hackagent config set api_key` in another shell
// shows up without a restart.
func Run(cfg *config.Config, cfgPath string) error {
	m := New(cfg, cfgPath)
	p := tea.NewProgram(m, tea.WithAltScreen())

	stop, err := config.Watch(cfgPath, func(next *config.Config) {
		p.Send(ConfigReloadedMsg{Config: next})
	})
	if err == nil {
		defer stop()
	}

	_, err = p.Run()
	return err
}
