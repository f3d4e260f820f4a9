// Package render builds display-ready models from view state. Everything in
// this package is a pure function of its input: no I/O, no styling, no
// clock reads, so identical state always renders to identical output.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/NobPolish/hackagent/internal/api"
	"github.com/NobPolish/hackagent/internal/attacks"
	"github.com/NobPolish/hackagent/internal/tui/view"
)

// BannerKind classifies the status banner so the display layer can pick a
// style without re-deriving state.
type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerInfo
	BannerLoading
	BannerEmpty
	BannerError
)

// Stat is one scalar in the stats block.
type Stat struct {
	Label string
	Value string
}

// DisplayModel is the render boundary: a stats block, a table projection of
// the snapshot, and a detail block for the selection.
type DisplayModel struct {
	Stats      []Stat
	Columns    []string
	Rows       [][]string
	Detail     string
	Banner     string
	BannerKind BannerKind

	// DetailStatus and DetailAttack describe the selected item so the display
	// layer can render badges without parsing Detail text. Empty when nothing
	// is selected or the entity has no such attribute.
	DetailStatus string
	DetailAttack string
}

// Sanitize strips control bytes from remote-sourced text so attacker-chosen
// agent names or response bodies cannot smuggle terminal escape sequences
// into the display. Newlines and tabs become spaces; everything else below
// 0x20, plus DEL, is dropped.
func Sanitize(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeBlock is Sanitize for multi-line detail text: newlines survive,
// all other control bytes are stripped.
func SanitizeBlock(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r == '\r':
			// dropped
		case r < 0x20 || r == 0x7f:
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// failureBanner maps every failure variant to user-facing text. Each kind is
// named explicitly; an unknown kind still renders a diagnostic rather than
// nothing.
func failureBanner(o failureInfo) string {
	switch o.kind {
	case api.KindConfigMissing:
		return "No API key configured. Run: hackagent config set api_key <key>"
	case api.KindAuthFailed:
		return "Authentication failed (401). Check your API key."
	case api.KindForbidden:
		return "Access denied (403). Your key lacks permission for this resource."
	case api.KindNotFound:
		return "Resource not found (404). The API endpoint may have moved."
	case api.KindServerError:
		return fmt.Sprintf("Server error (HTTP %d). Try again shortly.", o.status)
	case api.KindTimeout:
		return "Request timed out. The platform did not answer in time."
	case api.KindNetworkError:
		return "Network error: " + Sanitize(o.message)
	case api.KindUnexpectedError:
		return "Unexpected response: " + Sanitize(o.message)
	default:
		return fmt.Sprintf("Fetch failed (%s).", o.kind)
	}
}

type failureInfo struct {
	kind    api.Kind
	status  int
	message string
}

// banner derives the status line for a state. emptyMsg customizes the
// zero-items message per entity.
func banner[T any](s view.State[T], emptyMsg string) (string, BannerKind) {
	switch s.Phase {
	case view.PhaseIdle:
		return "Waiting for first refresh…", BannerInfo
	case view.PhaseLoading:
		if len(s.Snapshot) > 0 {
			return "Refreshing…", BannerLoading
		}
		return "Loading…", BannerLoading
	case view.PhaseEmpty:
		return emptyMsg, BannerEmpty
	case view.PhaseLoaded:
		return "", BannerNone
	case view.PhaseErrored:
		return failureBanner(failureInfo{
			kind:    s.Outcome.Kind,
			status:  s.Outcome.Status,
			message: s.Outcome.Message,
		}), BannerError
	default:
		return fmt.Sprintf("Unknown view phase (%s).", s.Phase), BannerError
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04")
}

// Agents builds the display model for the agents tab.
func Agents(s view.State[api.Agent]) DisplayModel {
	stats := api.CountAgents(s.Snapshot)
	m := DisplayModel{
		Stats: []Stat{
			{Label: "Total", Value: fmt.Sprintf("%d", stats.Total)},
			{Label: "Active", Value: fmt.Sprintf("%d", stats.Active)},
			{Label: "Inactive", Value: fmt.Sprintf("%d", stats.Inactive)},
		},
		Columns: []string{"Name", "Type", "Status", "Endpoint", "Created"},
	}
	m.Banner, m.BannerKind = banner(s, "No agents registered yet. Create one at https://hackagent.dev")

	for _, a := range s.Snapshot {
		status := "inactive"
		if a.Active() {
			status = "active"
		}
		m.Rows = append(m.Rows, []string{
			Sanitize(a.Name),
			Sanitize(a.AgentType),
			status,
			Sanitize(a.Endpoint),
			formatTime(a.CreatedAt),
		})
	}

	if a, ok := selected(s); ok {
		m.DetailStatus = "inactive"
		if a.Active() {
			m.DetailStatus = "active"
		}
		var d strings.Builder
		fmt.Fprintf(&d, "ID:           %s\n", Sanitize(a.ID))
		fmt.Fprintf(&d, "Name:         %s\n", Sanitize(a.Name))
		fmt.Fprintf(&d, "Type:         %s\n", Sanitize(a.AgentType))
		fmt.Fprintf(&d, "Endpoint:     %s\n", Sanitize(a.Endpoint))
		fmt.Fprintf(&d, "Organization: %s\n", Sanitize(a.Organization))
		fmt.Fprintf(&d, "Created:      %s\n", formatTime(a.CreatedAt))
		if a.Description != "" {
			fmt.Fprintf(&d, "\n%s\n", SanitizeBlock(a.Description))
		}
		m.Detail = d.String()
	} else {
		m.Detail = "Select an agent to inspect it."
	}
	return m
}

// Results builds the display model for the results tab.
func Results(s view.State[api.Result]) DisplayModel {
	stats := api.CountResults(s.Snapshot)
	m := DisplayModel{
		Stats: []Stat{
			{Label: "Total", Value: fmt.Sprintf("%d", stats.Total)},
			{Label: "Completed", Value: fmt.Sprintf("%d", stats.Completed)},
			{Label: "Running", Value: fmt.Sprintf("%d", stats.Running)},
			{Label: "Failed", Value: fmt.Sprintf("%d", stats.Failed)},
			{Label: "Success", Value: fmt.Sprintf("%.0f%%", stats.SuccessRate())},
		},
		Columns: []string{"Run", "Agent", "Attack", "Status", "Created"},
	}
	m.Banner, m.BannerKind = banner(s, "No attack results yet. Launch a run to see evaluations here.")

	for _, r := range s.Snapshot {
		m.Rows = append(m.Rows, []string{
			Sanitize(shortID(r.RunID)),
			Sanitize(r.AgentName),
			Sanitize(r.AttackType),
			Sanitize(r.EvaluationStatus),
			formatTime(r.CreatedAt),
		})
	}

	if r, ok := selected(s); ok {
		m.DetailStatus = Sanitize(r.EvaluationStatus)
		m.DetailAttack = Sanitize(r.AttackType)
		var d strings.Builder
		fmt.Fprintf(&d, "Result:  %s\n", Sanitize(r.ID))
		fmt.Fprintf(&d, "Run:     %s\n", Sanitize(r.RunID))
		fmt.Fprintf(&d, "Agent:   %s\n", Sanitize(r.AgentName))
		fmt.Fprintf(&d, "Attack:  %s\n", Sanitize(r.AttackType))
		fmt.Fprintf(&d, "Status:  %s\n", Sanitize(r.EvaluationStatus))
		fmt.Fprintf(&d, "Created: %s\n", formatTime(r.CreatedAt))
		if r.ResponseBody != "" {
			fmt.Fprintf(&d, "\n%s\n", SanitizeBlock(r.ResponseBody))
		}
		m.Detail = d.String()
	} else {
		m.Detail = "Select a result to see the agent's response."
	}
	return m
}

// Keys builds the display model for the keys tab.
func Keys(s view.State[api.Key]) DisplayModel {
	active := 0
	for _, k := range s.Snapshot {
		if !k.Revoked {
			active++
		}
	}
	m := DisplayModel{
		Stats: []Stat{
			{Label: "Total", Value: fmt.Sprintf("%d", len(s.Snapshot))},
			{Label: "Active", Value: fmt.Sprintf("%d", active)},
			{Label: "Revoked", Value: fmt.Sprintf("%d", len(s.Snapshot)-active)},
		},
		Columns: []string{"Name", "Prefix", "Status", "Created"},
	}
	m.Banner, m.BannerKind = banner(s, "No API keys found for this organization.")

	for _, k := range s.Snapshot {
		status := "active"
		if k.Revoked {
			status = "revoked"
		}
		m.Rows = append(m.Rows, []string{
			Sanitize(k.Name),
			Sanitize(k.Prefix),
			status,
			formatTime(k.CreatedAt),
		})
	}

	if k, ok := selected(s); ok {
		m.DetailStatus = "active"
		if k.Revoked {
			m.DetailStatus = "revoked"
		}
		var d strings.Builder
		fmt.Fprintf(&d, "ID:      %s\n", Sanitize(k.ID))
		fmt.Fprintf(&d, "Name:    %s\n", Sanitize(k.Name))
		fmt.Fprintf(&d, "Prefix:  %s\n", Sanitize(k.Prefix))
		fmt.Fprintf(&d, "Revoked: %t\n", k.Revoked)
		fmt.Fprintf(&d, "Created: %s\n", formatTime(k.CreatedAt))
		m.Detail = d.String()
	} else {
		m.Detail = "Select a key to inspect it."
	}
	return m
}

// Overview builds the display model for the overview tab. The snapshot holds
// a single aggregated summary.
func Overview(s view.State[api.Summary]) DisplayModel {
	var sum api.Summary
	if len(s.Snapshot) > 0 {
		sum = s.Snapshot[0]
	}
	agentStats := api.CountAgents(sum.Agents)
	resultStats := api.CountResults(sum.Results)

	m := DisplayModel{
		Stats: []Stat{
			{Label: "Agents", Value: fmt.Sprintf("%d", agentStats.Total)},
			{Label: "Active", Value: fmt.Sprintf("%d", agentStats.Active)},
			{Label: "Runs", Value: fmt.Sprintf("%d", resultStats.Total)},
			{Label: "Success", Value: fmt.Sprintf("%.0f%%", resultStats.SuccessRate())},
			{Label: "Keys", Value: fmt.Sprintf("%d", len(sum.Keys))},
		},
		Columns: []string{"Agent", "Attack", "Status", "Created"},
	}
	m.Banner, m.BannerKind = banner(s, "Nothing to summarize yet.")

	// Recent activity: newest results first, capped for the summary pane.
	recent := sum.Results
	if len(recent) > 8 {
		recent = recent[:8]
	}
	for _, r := range recent {
		m.Rows = append(m.Rows, []string{
			Sanitize(r.AgentName),
			Sanitize(r.AttackType),
			Sanitize(r.EvaluationStatus),
			formatTime(r.CreatedAt),
		})
	}
	m.Detail = fmt.Sprintf("%d of %d agents active, %d runs recorded.",
		agentStats.Active, agentStats.Total, resultStats.Total)
	return m
}

// Attacks builds the display model for the local attack-template library.
// Templates come from disk, not the platform, but they flow through the same
// state machine so the tab behaves like every other one.
func Attacks(s view.State[*attacks.Template]) DisplayModel {
	builtin := 0
	for _, t := range s.Snapshot {
		if t.Source == attacks.SourceBuiltin {
			builtin++
		}
	}
	m := DisplayModel{
		Stats: []Stat{
			{Label: "Templates", Value: fmt.Sprintf("%d", len(s.Snapshot))},
			{Label: "Builtin", Value: fmt.Sprintf("%d", builtin)},
			{Label: "User", Value: fmt.Sprintf("%d", len(s.Snapshot)-builtin)},
		},
		Columns: []string{"Name", "Type", "Source", "Vars"},
	}
	m.Banner, m.BannerKind = banner(s, "No attack templates found. Drop .md files into the template directory.")

	for _, t := range s.Snapshot {
		m.Rows = append(m.Rows, []string{
			Sanitize(t.Name),
			Sanitize(t.AttackType),
			t.Source.String(),
			fmt.Sprintf("%d", len(t.Variables)),
		})
	}

	if t, ok := selected(s); ok {
		m.DetailAttack = Sanitize(t.AttackType)
		var d strings.Builder
		fmt.Fprintf(&d, "Name:   %s\n", Sanitize(t.Name))
		fmt.Fprintf(&d, "Type:   %s\n", Sanitize(t.AttackType))
		fmt.Fprintf(&d, "Source: %s\n", t.Source)
		if t.SourcePath != "" {
			fmt.Fprintf(&d, "Path:   %s\n", Sanitize(t.SourcePath))
		}
		if len(t.Tags) > 0 {
			fmt.Fprintf(&d, "Tags:   %s\n", Sanitize(strings.Join(t.Tags, ", ")))
		}
		if t.Description != "" {
			fmt.Fprintf(&d, "\n%s\n", SanitizeBlock(t.Description))
		}
		if len(t.Variables) > 0 {
			d.WriteString("\nVariables:\n")
			for _, v := range t.Variables {
				marker := " "
				if v.Required {
					marker = "*"
				}
				fmt.Fprintf(&d, "  %s %s", marker, Sanitize(v.Name))
				if v.Default != "" {
					fmt.Fprintf(&d, " (default %s)", Sanitize(v.Default))
				}
				d.WriteString("\n")
			}
		}
		m.Detail = d.String()
	} else {
		m.Detail = "Select a template to preview it."
	}
	return m
}

func selected[T any](s view.State[T]) (T, bool) {
	var zero T
	if s.Selected < 0 || s.Selected >= len(s.Snapshot) {
		return zero, false
	}
	return s.Snapshot[s.Selected], true
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
