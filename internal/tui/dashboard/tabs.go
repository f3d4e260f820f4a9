package dashboard

import (
	"context"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NobPolish/hackagent/internal/api"
	"github.com/NobPolish/hackagent/internal/attacks"
	"github.com/NobPolish/hackagent/internal/config"
	"github.com/NobPolish/hackagent/internal/tui/render"
	"github.com/NobPolish/hackagent/internal/tui/view"
)

// Tab ids. SwitchTab silently ignores anything not in this set.
const (
	TabOverview = "overview"
	TabAgents   = "agents"
	TabResults  = "results"
	TabKeys     = "keys"
	TabAttacks  = "attacks"
	TabSettings = "settings"
)

// Tab is the shell's view of one tab. The shell multiplexes every message to
// every tab; each tab claims only the messages addressed to it.
type Tab interface {
	ID() string
	Title() string

	// Mount arms the tab; the returned cmd kicks off its first work.
	Mount() tea.Cmd
	// Unmount disarms timers and drops transient state.
	Unmount()

	// HandleMsg consumes lifecycle messages (fetch results, ticks). The
	// returned Notice is non-zero when the tab wants a toast raised.
	HandleMsg(msg tea.Msg) (tea.Cmd, Notice)
	// HandleKey consumes keys while the tab is active.
	HandleKey(msg tea.KeyMsg) tea.Cmd

	View(f Frame) string
}

// Refreshable marks tabs that respond to the manual refresh key. Tabs
// without remote data (settings) simply do not implement it.
type Refreshable interface {
	Refresh() tea.Cmd
}

// Notice is a toast request bubbled up from a tab. The zero value means no
// toast. Kind carries the failure variant so the shell can mirror certain
// failures to system-level notification channels.
type Notice struct {
	Severity Severity
	Text     string
	Kind     api.Kind
}

// Session holds the shared, swappable platform connection. Fetch closures
// capture the session rather than the client, so a config reload takes
// effect on the very next fetch without rebuilding tabs.
type Session struct {
	client  *api.Client
	cfgPath string
}

// NewSession builds a session from the loaded config.
func NewSession(cfg *config.Config, cfgPath string) *Session {
	s := &Session{cfgPath: cfgPath}
	s.Reconfigure(cfg)
	return s
}

// Client returns the current platform client.
func (s *Session) Client() *api.Client { return s.client }

// ConfigPath returns the path the config was loaded from ("" for default).
func (s *Session) ConfigPath() string { return s.cfgPath }

// Reconfigure swaps the client for one built from cfg.
func (s *Session) Reconfigure(cfg *config.Config) {
	s.client = api.NewClient(cfg.BaseURL, cfg.APIKey, api.WithTimeout(cfg.Timeout()))
}

// dataTab is the generic tab over one entity type: a lifecycle controller
// plus a pure display-model builder. The concrete tabs differ only in their
// fetcher and builder.
type dataTab[T any] struct {
	id    string
	title string
	ctrl  *view.Controller[T]
	build func(view.State[T]) render.DisplayModel

	scroll int
}

func newDataTab[T any](id, title string, fetch view.Fetcher[T], policy view.RefreshPolicy, build func(view.State[T]) render.DisplayModel) *dataTab[T] {
	return &dataTab[T]{
		id:    id,
		title: title,
		ctrl:  view.New(id, fetch, policy),
		build: build,
	}
}

func (t *dataTab[T]) ID() string    { return t.id }
func (t *dataTab[T]) Title() string { return t.title }

func (t *dataTab[T]) Mount() tea.Cmd { return t.ctrl.Mount() }

func (t *dataTab[T]) Unmount() {
	t.scroll = 0
	t.ctrl.Unmount()
}

func (t *dataTab[T]) Refresh() tea.Cmd { return t.ctrl.Refresh() }

func (t *dataTab[T]) HandleMsg(msg tea.Msg) (tea.Cmd, Notice) {
	switch m := msg.(type) {
	case view.TickMsg:
		return t.ctrl.HandleTick(m), Notice{}
	case view.ResultMsg[T]:
		if t.ctrl.Apply(m) {
			dm := t.build(t.ctrl.State())
			return nil, Notice{
				Severity: SeverityError,
				Text:     t.title + ": " + dm.Banner,
				Kind:     m.Outcome.Kind,
			}
		}
		return nil, Notice{}
	}
	return nil, Notice{}
}

func (t *dataTab[T]) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		t.ctrl.MoveSelection(-1)
	case "down":
		t.ctrl.MoveSelection(1)
	case "home":
		t.ctrl.Select(0)
	case "end":
		t.ctrl.Select(len(t.ctrl.Snapshot()) - 1)
	case "esc":
		t.ctrl.ClearSelection()
	}
	return nil
}

func (t *dataTab[T]) View(f Frame) string {
	return renderDisplay(t.build(t.ctrl.State()), t.ctrl.SelectedIndex(), &t.scroll, f)
}

// Loading reports whether a fetch is in flight, for the header spinner.
func (t *dataTab[T]) Loading() bool { return t.ctrl.Phase() == view.PhaseLoading }

// loadingTab is the spinner capability shared by the data tabs.
type loadingTab interface{ Loading() bool }

// NewOverviewTab builds the aggregated overview tab.
func NewOverviewTab(s *Session, cfg *config.Config) Tab {
	return newDataTab(TabOverview, "Overview",
		func(ctx context.Context) api.Outcome[api.Summary] {
			return s.Client().FetchSummary(ctx)
		},
		view.RefreshPolicy{Interval: cfg.OverviewInterval(), Enabled: cfg.Refresh.Enabled},
		render.Overview,
	)
}

// NewAgentsTab builds the agents tab.
func NewAgentsTab(s *Session, cfg *config.Config) Tab {
	return newDataTab(TabAgents, "Agents",
		func(ctx context.Context) api.Outcome[api.Agent] {
			return s.Client().ListAgents(ctx)
		},
		view.RefreshPolicy{Interval: cfg.AgentsInterval(), Enabled: cfg.Refresh.Enabled},
		render.Agents,
	)
}

// NewResultsTab builds the attack-results tab.
func NewResultsTab(s *Session, cfg *config.Config) Tab {
	return newDataTab(TabResults, "Results",
		func(ctx context.Context) api.Outcome[api.Result] {
			return s.Client().ListResults(ctx)
		},
		view.RefreshPolicy{Interval: cfg.ResultsInterval(), Enabled: cfg.Refresh.Enabled},
		render.Results,
	)
}

// NewKeysTab builds the API-keys tab.
func NewKeysTab(s *Session, cfg *config.Config) Tab {
	return newDataTab(TabKeys, "Keys",
		func(ctx context.Context) api.Outcome[api.Key] {
			return s.Client().ListKeys(ctx)
		},
		view.RefreshPolicy{Interval: cfg.KeysInterval(), Enabled: cfg.Refresh.Enabled},
		render.Keys,
	)
}

// NewAttacksTab builds the local attack-template library tab. Templates live
// on disk, so there is no auto-refresh timer; the manual refresh key rescans
// the template directories.
func NewAttacksTab(cfg *config.Config) Tab {
	loader := attacks.NewLoader(cfg.Attacks.TemplateDirs...)
	return newDataTab(TabAttacks, "Attacks",
		func(ctx context.Context) api.Outcome[*attacks.Template] {
			items, err := loader.List()
			if err != nil {
				return api.UnexpectedError[*attacks.Template](err.Error())
			}
			sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
			return api.Collected(items)
		},
		view.RefreshPolicy{Enabled: false},
		render.Attacks,
	)
}
