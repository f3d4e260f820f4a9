// Package view owns the per-tab fetch lifecycle: the phase machine, the
// refresh timer, and the epoch guard that discards stale results.
package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NobPolish/hackagent/internal/api"
)

// Phase is the lifecycle state of a tab's data.
type Phase int

const (
	// PhaseIdle means no fetch has been triggered since mount.
	PhaseIdle Phase = iota
	// PhaseLoading means a fetch is in flight for the current epoch.
	PhaseLoading
	// PhaseLoaded means the last fetch produced a non-empty snapshot.
	PhaseLoaded
	// PhaseEmpty means the last fetch succeeded with zero items.
	PhaseEmpty
	// PhaseErrored means the last fetch failed.
	PhaseErrored
)

// String returns a short lower-case name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseEmpty:
		return "empty"
	case PhaseErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// RefreshPolicy schedules automatic refreshes. Mutated only by the owning
// controller.
type RefreshPolicy struct {
	Interval  time.Duration
	Enabled   bool
	LastFired time.Time
}

// Fetcher produces one classified outcome per call.
type Fetcher[T any] func(ctx context.Context) api.Outcome[T]

// ResultMsg delivers a completed fetch back into the event loop. Epoch is
// the controller epoch captured when the fetch was dispatched; the result is
// applied only if it still matches.
type ResultMsg[T any] struct {
	TabID   string
	Epoch   uint64
	Outcome api.Outcome[T]
}

// TickMsg is the refresh-timer tick for one tab. Gen identifies the timer
// chain that scheduled it; a tick from a chain disarmed by unmount carries a
// stale generation and is dropped even if the tab has remounted since.
type TickMsg struct {
	TabID string
	Gen   uint64
}

// State is the immutable projection handed to the render layer.
type State[T any] struct {
	Epoch    uint64
	Phase    Phase
	Outcome  api.Outcome[T]
	Snapshot []T
	Selected int // -1 when nothing is selected
}

// Controller drives one tab's fetch/refresh state machine. All methods run
// on the bubbletea event loop, so no locking is needed.
type Controller[T any] struct {
	tabID  string
	fetch  Fetcher[T]
	policy RefreshPolicy
	now    func() time.Time

	epoch    uint64
	phase    Phase
	settled  Phase // last phase a completed fetch left behind
	outcome  api.Outcome[T]
	snapshot []T
	selected int
	mounted  bool
	timerGen uint64
}

// Option configures a Controller.
type Option[T any] func(*Controller[T])

// WithClock injects the time source. Tests use this to pin LastFired.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(c *Controller[T]) { c.now = now }
}

// New creates a controller for the given tab.
func New[T any](tabID string, fetch Fetcher[T], policy RefreshPolicy, opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		tabID:    tabID,
		fetch:    fetch,
		policy:   policy,
		now:      time.Now,
		outcome:  api.Pending[T](),
		selected: -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TabID returns the owning tab's id.
func (c *Controller[T]) TabID() string { return c.tabID }

// Phase returns the current lifecycle phase.
func (c *Controller[T]) Phase() Phase { return c.phase }

// Epoch returns the current epoch.
func (c *Controller[T]) Epoch() uint64 { return c.epoch }

// Mounted reports whether the tab is mounted.
func (c *Controller[T]) Mounted() bool { return c.mounted }

// Policy returns the current refresh policy.
func (c *Controller[T]) Policy() RefreshPolicy { return c.policy }

// Snapshot returns the current item snapshot.
func (c *Controller[T]) Snapshot() []T { return c.snapshot }

// State captures the view state for rendering.
func (c *Controller[T]) State() State[T] {
	return State[T]{
		Epoch:    c.epoch,
		Phase:    c.phase,
		Outcome:  c.outcome,
		Snapshot: c.snapshot,
		Selected: c.selected,
	}
}

// Mount arms the refresh timer and fires an immediate fetch so data is not
// stale on return to this tab.
func (c *Controller[T]) Mount() tea.Cmd {
	c.mounted = true
	c.timerGen++
	cmds := []tea.Cmd{c.trigger()}
	if c.policy.Enabled && c.policy.Interval > 0 {
		cmds = append(cmds, c.tickCmd())
	}
	return batch(cmds)
}

// Unmount disarms the timer and discards the view state. The epoch bump
// guarantees any in-flight fetch resolves into a stale epoch and is dropped;
// the network operation itself is not aborted.
func (c *Controller[T]) Unmount() {
	c.mounted = false
	c.epoch++
	c.phase = PhaseIdle
	c.settled = PhaseIdle
	c.outcome = api.Pending[T]()
	c.snapshot = nil
	c.selected = -1
}

// Refresh is the manual trigger. Ignored while a fetch is already in flight.
func (c *Controller[T]) Refresh() tea.Cmd {
	return c.trigger()
}

// HandleTick processes a refresh-timer tick: fetch again and reschedule.
// Ticks from a disarmed chain (unmount, or an unmount/remount cycle) carry a
// stale generation and stop here, so each mount runs exactly one timer chain.
func (c *Controller[T]) HandleTick(msg TickMsg) tea.Cmd {
	if msg.TabID != c.tabID || msg.Gen != c.timerGen {
		return nil
	}
	if !c.mounted || !c.policy.Enabled || c.policy.Interval <= 0 {
		return nil
	}
	return batch([]tea.Cmd{c.trigger(), c.tickCmd()})
}

// trigger starts a fetch unless one is already in flight. At most one fetch
// is Loading per tab at any instant; a superseding trigger is dropped, not
// queued.
func (c *Controller[T]) trigger() tea.Cmd {
	if !c.mounted {
		return nil
	}
	if c.phase == PhaseLoading {
		return nil
	}
	c.epoch++
	c.phase = PhaseLoading
	c.policy.LastFired = c.now()

	epoch := c.epoch
	tabID := c.tabID
	fetch := c.fetch
	return func() tea.Msg {
		return ResultMsg[T]{
			TabID:   tabID,
			Epoch:   epoch,
			Outcome: fetch(context.Background()),
		}
	}
}

func (c *Controller[T]) tickCmd() tea.Cmd {
	tabID := c.tabID
	gen := c.timerGen
	return tea.Tick(c.policy.Interval, func(time.Time) tea.Msg {
		return TickMsg{TabID: tabID, Gen: gen}
	})
}

// Apply folds a completed fetch into the view state. Results whose epoch no
// longer matches are dropped unconditionally, giving last-trigger-wins
// ordering. The returned flag is true only on the transition into
// PhaseErrored, so the caller fires exactly one notification per persistent
// failure.
func (c *Controller[T]) Apply(msg ResultMsg[T]) (enteredErrored bool) {
	if msg.TabID != c.tabID || msg.Epoch != c.epoch {
		return false
	}

	// The phase is Loading by now, so the transition check has to look at
	// where the previous completion settled, not at the current phase.
	wasErrored := c.settled == PhaseErrored
	c.outcome = msg.Outcome

	switch msg.Outcome.Kind {
	case api.KindPending:
		// A fetcher never returns Pending; treat it as no completion.
		c.phase = PhaseLoading
		return false
	case api.KindSuccess:
		c.phase = PhaseLoaded
		c.snapshot = msg.Outcome.Items
		c.selected = -1
	case api.KindEmpty:
		c.phase = PhaseEmpty
		c.snapshot = nil
		c.selected = -1
	default:
		// Failures keep the previous snapshot and selection so the user
		// does not lose context while the error banner is up.
		c.phase = PhaseErrored
	}
	c.settled = c.phase

	return c.phase == PhaseErrored && !wasErrored
}

// Selected returns the selected item, if any.
func (c *Controller[T]) Selected() (T, bool) {
	var zero T
	if c.selected < 0 || c.selected >= len(c.snapshot) {
		return zero, false
	}
	return c.snapshot[c.selected], true
}

// SelectedIndex returns the selected index, -1 when none.
func (c *Controller[T]) SelectedIndex() int { return c.selected }

// Select sets the selection, clamping into the snapshot bounds. An empty
// snapshot clears the selection.
func (c *Controller[T]) Select(i int) {
	if len(c.snapshot) == 0 {
		c.selected = -1
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(c.snapshot) {
		i = len(c.snapshot) - 1
	}
	c.selected = i
}

// MoveSelection moves the selection by delta, starting from the top when
// nothing is selected yet.
func (c *Controller[T]) MoveSelection(delta int) {
	if len(c.snapshot) == 0 {
		return
	}
	if c.selected < 0 {
		if delta >= 0 {
			c.Select(0)
		} else {
			c.Select(len(c.snapshot) - 1)
		}
		return
	}
	c.Select(c.selected + delta)
}

// ClearSelection drops the selection.
func (c *Controller[T]) ClearSelection() { c.selected = -1 }

// batch drops nil cmds so callers can compose triggers freely.
func batch(cmds []tea.Cmd) tea.Cmd {
	live := cmds[:0]
	for _, cmd := range cmds {
		if cmd != nil {
			live = append(live, cmd)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	default:
		return tea.Batch(live...)
	}
}
