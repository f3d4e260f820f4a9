package render

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/NobPolish/hackagent/internal/api"
	"github.com/NobPolish/hackagent/internal/attacks"
	"github.com/NobPolish/hackagent/internal/tui/view"
)

func agentState(phase view.Phase, outcome api.Outcome[api.Agent]) view.State[api.Agent] {
	return view.State[api.Agent]{
		Phase:    phase,
		Outcome:  outcome,
		Snapshot: outcome.Items,
		Selected: -1,
	}
}

func TestAgentsStats(t *testing.T) {
	agents := []api.Agent{
		{Name: "alpha", Endpoint: "https://a.example"},
		{Name: "beta", Endpoint: "https://b.example"},
		{Name: "gamma"},
	}
	m := Agents(agentState(view.PhaseLoaded, api.Collected(agents)))

	want := []Stat{
		{Label: "Total", Value: "3"},
		{Label: "Active", Value: "2"},
		{Label: "Inactive", Value: "1"},
	}
	if !reflect.DeepEqual(m.Stats, want) {
		t.Errorf("stats = %+v, want %+v", m.Stats, want)
	}
	if len(m.Rows) != 3 {
		t.Errorf("rows = %d, want 3", len(m.Rows))
	}
	if m.Banner != "" || m.BannerKind != BannerNone {
		t.Errorf("loaded state should have no banner, got %q", m.Banner)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	agents := []api.Agent{
		{ID: "1", Name: "alpha", Endpoint: "https://a.example", CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		{ID: "2", Name: "beta", Description: "probes the support bot"},
	}
	s := agentState(view.PhaseLoaded, api.Collected(agents))
	s.Selected = 1

	first := Agents(s)
	second := Agents(s)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical state must render to identical output")
	}
}

func TestEmptySuccessAndEmptyRenderAlike(t *testing.T) {
	// Success with zero items classifies as Empty at the adapter, but the
	// builder must treat a hand-built Success([]) the same way.
	emptyOutcome := agentState(view.PhaseEmpty, api.Collected([]api.Agent{}))
	successNoItems := view.State[api.Agent]{
		Phase:    view.PhaseEmpty,
		Outcome:  api.Outcome[api.Agent]{Kind: api.KindSuccess},
		Snapshot: nil,
		Selected: -1,
	}

	a := Agents(emptyOutcome)
	b := Agents(successNoItems)
	if len(a.Rows) != 0 || len(b.Rows) != 0 {
		t.Error("no rows expected for empty snapshots")
	}
	if a.Banner != b.Banner || a.BannerKind != b.BannerKind {
		t.Errorf("banners differ: %q vs %q", a.Banner, b.Banner)
	}
	if a.BannerKind == BannerError || b.BannerKind == BannerError {
		t.Error("empty snapshot must not render an error banner")
	}
	if !reflect.DeepEqual(a.Stats, b.Stats) {
		t.Errorf("stats differ: %+v vs %+v", a.Stats, b.Stats)
	}
}

func TestEveryFailureVariantHasABanner(t *testing.T) {
	outcomes := map[string]api.Outcome[api.Agent]{
		"config missing": api.ConfigMissing[api.Agent](),
		"auth failed":    api.AuthFailed[api.Agent](),
		"forbidden":      api.Forbidden[api.Agent](),
		"not found":      api.NotFound[api.Agent](),
		"server error":   api.ServerError[api.Agent](503),
		"timeout":        api.Timeout[api.Agent](),
		"network error":  api.NetworkError[api.Agent]("connection refused"),
		"unexpected":     api.UnexpectedError[api.Agent]("bad json"),
	}
	for name, o := range outcomes {
		t.Run(name, func(t *testing.T) {
			m := Agents(agentState(view.PhaseErrored, o))
			if m.Banner == "" {
				t.Error("failure rendered with no banner text")
			}
			if m.BannerKind != BannerError {
				t.Errorf("banner kind = %v, want error", m.BannerKind)
			}
		})
	}
}

func TestServerErrorBannerCarriesStatus(t *testing.T) {
	m := Agents(agentState(view.PhaseErrored, api.ServerError[api.Agent](502)))
	if !strings.Contains(m.Banner, "502") {
		t.Errorf("banner %q should name the status code", m.Banner)
	}
}

func TestSanitizeStripsControlSequences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain name", "plain name"},
		{"evil\x1b[31mred\x1b[0m", "evil[31mred[0m"},
		{"tab\there", "tab here"},
		{"multi\nline", "multi line"},
		{"bell\x07ring", "bellring"},
		{"del\x7fete", "delete"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeBlockKeepsNewlines(t *testing.T) {
	in := "line one\nline two\x1b[2Jwiped\r\n"
	got := SanitizeBlock(in)
	if !strings.Contains(got, "line one\nline two") {
		t.Errorf("SanitizeBlock lost newlines: %q", got)
	}
	if strings.ContainsRune(got, 0x1b) || strings.ContainsRune(got, '\r') {
		t.Errorf("SanitizeBlock left control bytes: %q", got)
	}
}

func TestAgentDetailForSelection(t *testing.T) {
	agents := []api.Agent{
		{ID: "id-1", Name: "alpha"},
		{ID: "id-2", Name: "beta\x1b[0m", Description: "desc"},
	}
	s := agentState(view.PhaseLoaded, api.Collected(agents))

	m := Agents(s)
	if !strings.Contains(m.Detail, "Select an agent") {
		t.Errorf("no-selection detail = %q", m.Detail)
	}

	s.Selected = 1
	m = Agents(s)
	if !strings.Contains(m.Detail, "id-2") {
		t.Errorf("detail = %q, want selected agent fields", m.Detail)
	}
	if strings.ContainsRune(m.Detail, 0x1b) {
		t.Error("detail leaked an escape byte from remote data")
	}
}

func TestResultsStatsAndDetail(t *testing.T) {
	results := []api.Result{
		{ID: "r1", RunID: "run-aaaa-bbbb", AgentName: "alpha", AttackType: "prompt-injection", EvaluationStatus: api.StatusCompleted, ResponseBody: "I refuse."},
		{ID: "r2", RunID: "run-cccc-dddd", AgentName: "beta", AttackType: "jailbreak", EvaluationStatus: api.StatusFailed},
	}
	s := view.State[api.Result]{
		Phase:    view.PhaseLoaded,
		Outcome:  api.Collected(results),
		Snapshot: results,
		Selected: 0,
	}

	m := Results(s)
	if m.Stats[4].Label != "Success" || m.Stats[4].Value != "50%" {
		t.Errorf("success stat = %+v", m.Stats[4])
	}
	if got := m.Rows[0][0]; got != "run-aaaa" {
		t.Errorf("run column = %q, want truncated id", got)
	}
	if !strings.Contains(m.Detail, "I refuse.") {
		t.Errorf("detail = %q, want response body", m.Detail)
	}
}

func TestDetailAttributesFollowSelection(t *testing.T) {
	agents := []api.Agent{
		{ID: "1", Name: "alpha", Endpoint: "https://a.example"},
		{ID: "2", Name: "beta"},
	}
	s := agentState(view.PhaseLoaded, api.Collected(agents))

	m := Agents(s)
	if m.DetailStatus != "" || m.DetailAttack != "" {
		t.Errorf("no selection should leave detail attributes empty, got %q / %q", m.DetailStatus, m.DetailAttack)
	}

	s.Selected = 0
	if m = Agents(s); m.DetailStatus != "active" {
		t.Errorf("agent with endpoint: status = %q, want active", m.DetailStatus)
	}
	s.Selected = 1
	if m = Agents(s); m.DetailStatus != "inactive" {
		t.Errorf("agent without endpoint: status = %q, want inactive", m.DetailStatus)
	}

	results := []api.Result{
		{ID: "r1", AttackType: "jailbreak", EvaluationStatus: api.StatusCompleted},
	}
	rs := view.State[api.Result]{
		Phase:    view.PhaseLoaded,
		Outcome:  api.Collected(results),
		Snapshot: results,
		Selected: 0,
	}
	rm := Results(rs)
	if rm.DetailStatus != api.StatusCompleted || rm.DetailAttack != "jailbreak" {
		t.Errorf("result detail attributes = %q / %q", rm.DetailStatus, rm.DetailAttack)
	}

	keys := []api.Key{{ID: "k1", Name: "old", Revoked: true}}
	ks := view.State[api.Key]{
		Phase:    view.PhaseLoaded,
		Outcome:  api.Collected(keys),
		Snapshot: keys,
		Selected: 0,
	}
	if km := Keys(ks); km.DetailStatus != "revoked" {
		t.Errorf("revoked key: status = %q", km.DetailStatus)
	}
}

func TestOverviewAggregates(t *testing.T) {
	sum := api.Summary{
		Agents: []api.Agent{
			{Name: "alpha", Endpoint: "https://a"},
			{Name: "beta"},
		},
		Results: []api.Result{
			{AgentName: "alpha", EvaluationStatus: api.StatusCompleted},
		},
		Keys: []api.Key{{Name: "ci"}},
	}
	s := view.State[api.Summary]{
		Phase:    view.PhaseLoaded,
		Outcome:  api.Collected([]api.Summary{sum}),
		Snapshot: []api.Summary{sum},
		Selected: -1,
	}

	m := Overview(s)
	byLabel := map[string]string{}
	for _, st := range m.Stats {
		byLabel[st.Label] = st.Value
	}
	if byLabel["Agents"] != "2" || byLabel["Active"] != "1" || byLabel["Runs"] != "1" || byLabel["Keys"] != "1" {
		t.Errorf("overview stats = %v", byLabel)
	}
	if byLabel["Success"] != "100%" {
		t.Errorf("success = %q", byLabel["Success"])
	}
	if len(m.Rows) != 1 {
		t.Errorf("recent rows = %d", len(m.Rows))
	}
}

func TestKeysModel(t *testing.T) {
	keys := []api.Key{
		{Name: "ci", Prefix: "hak_ci", Revoked: false},
		{Name: "old", Prefix: "hak_old", Revoked: true},
	}
	s := view.State[api.Key]{
		Phase:    view.PhaseLoaded,
		Outcome:  api.Collected(keys),
		Snapshot: keys,
		Selected: -1,
	}
	m := Keys(s)
	if m.Stats[1].Value != "1" || m.Stats[2].Value != "1" {
		t.Errorf("key stats = %+v", m.Stats)
	}
	if m.Rows[1][2] != "revoked" {
		t.Errorf("revoked row = %v", m.Rows[1])
	}
}

func TestAttacksModel(t *testing.T) {
	templates := []*attacks.Template{
		{
			Name:       "advprefix",
			AttackType: "advprefix",
			Source:     attacks.SourceBuiltin,
			Variables: []attacks.VariableSpec{
				{Name: "goal", Required: true},
				{Name: "max_new_tokens", Default: "512"},
			},
		},
		{
			Name:       "custom-probe",
			AttackType: "prompt-injection",
			Source:     attacks.SourceUser,
			SourcePath: "/home/u/.config/hackagent/attacks/custom-probe.md",
			Tags:       []string{"llm", "injection"},
		},
	}
	s := view.State[*attacks.Template]{
		Phase:    view.PhaseLoaded,
		Outcome:  api.Collected(templates),
		Snapshot: templates,
		Selected: 0,
	}
	m := Attacks(s)

	want := []Stat{
		{Label: "Templates", Value: "2"},
		{Label: "Builtin", Value: "1"},
		{Label: "User", Value: "1"},
	}
	if !reflect.DeepEqual(m.Stats, want) {
		t.Errorf("stats = %+v, want %+v", m.Stats, want)
	}
	if m.Rows[0][2] != "builtin" || m.Rows[1][2] != "user" {
		t.Errorf("source column = %v / %v", m.Rows[0], m.Rows[1])
	}
	if !strings.Contains(m.Detail, "* goal") {
		t.Errorf("detail missing required-variable marker:\n%s", m.Detail)
	}
	if !strings.Contains(m.Detail, "(default 512)") {
		t.Errorf("detail missing default annotation:\n%s", m.Detail)
	}
}

func TestAttacksNoSelection(t *testing.T) {
	s := view.State[*attacks.Template]{
		Phase:    view.PhaseEmpty,
		Outcome:  api.Collected[*attacks.Template](nil),
		Selected: -1,
	}
	m := Attacks(s)
	if m.BannerKind != BannerEmpty {
		t.Errorf("banner kind = %v, want empty", m.BannerKind)
	}
	if !strings.Contains(m.Detail, "Select a template") {
		t.Errorf("detail = %q", m.Detail)
	}
}
