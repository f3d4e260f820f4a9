package cli

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/NobPolish/hackagent/internal/api"
	"github.com/NobPolish/hackagent/internal/output"
)

func TestAgentRows(t *testing.T) {
	agents := []api.Agent{
		{Name: "alpha", AgentType: "openai-sdk", Endpoint: "https://a.example",
			CreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)},
		{Name: "beta", AgentType: "litellm"},
	}
	rows := agentRows(agents)
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0][2] != "active" || rows[1][2] != "inactive" {
		t.Errorf("status column = %q / %q", rows[0][2], rows[1][2])
	}
	if rows[0][4] != "2026-05-01T12:00:00Z" {
		t.Errorf("created column = %q", rows[0][4])
	}
	if rows[1][4] != "-" {
		t.Errorf("zero time column = %q", rows[1][4])
	}
}

func TestKeyRows(t *testing.T) {
	rows := keyRows([]api.Key{
		{Name: "ci", Prefix: "hak_ci", Revoked: false},
		{Name: "old", Prefix: "hak_old", Revoked: true},
	})
	if rows[0][2] != "active" || rows[1][2] != "revoked" {
		t.Errorf("status column = %q / %q", rows[0][2], rows[1][2])
	}
}

func TestFilterResults(t *testing.T) {
	results := []api.Result{
		{ID: "1", EvaluationStatus: api.StatusCompleted},
		{ID: "2", EvaluationStatus: api.StatusFailed},
		{ID: "3", EvaluationStatus: api.StatusCompleted},
	}
	if got := filterResults(results, ""); len(got) != 3 {
		t.Errorf("no filter kept %d", len(got))
	}
	got := filterResults(results, api.StatusCompleted)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("completed filter = %+v", got)
	}
	if got := filterResults(results, "BOGUS"); len(got) != 0 {
		t.Errorf("bogus filter kept %d", len(got))
	}
}

func TestFindResult(t *testing.T) {
	results := []api.Result{
		{ID: "4f9a02b1-aaaa"},
		{ID: "4f9a02b1-bbbb"},
		{ID: "83c1d77e-cccc"},
	}

	if _, ok := findResult(results, "4f9a02b1-aaaa"); !ok {
		t.Error("exact id not found")
	}
	if r, ok := findResult(results, "83c1"); !ok || r.ID != "83c1d77e-cccc" {
		t.Errorf("unambiguous prefix = (%v, %t)", r.ID, ok)
	}
	if _, ok := findResult(results, "4f9a02b1-"); ok {
		t.Error("ambiguous prefix matched")
	}
	if _, ok := findResult(results, "83"); ok {
		t.Error("too-short prefix matched")
	}
	if _, ok := findResult(results, "zzzz"); ok {
		t.Error("missing id matched")
	}
}

func TestParseVars(t *testing.T) {
	values, err := parseVars([]string{"goal=leak prompt", "channel=document"})
	if err != nil {
		t.Fatalf("parseVars error: %v", err)
	}
	if values["goal"] != "leak prompt" || values["channel"] != "document" {
		t.Errorf("values = %v", values)
	}

	if _, err := parseVars([]string{"novalue"}); err == nil {
		t.Error("missing = accepted")
	}
	if _, err := parseVars([]string{"=x"}); err == nil {
		t.Error("empty name accepted")
	}

	values, err = parseVars([]string{"goal=a=b"})
	if err != nil || values["goal"] != "a=b" {
		t.Errorf("value with = : %v, %v", values, err)
	}
}

func TestOutcomeErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		outcome  api.Outcome[api.Agent]
		wantCode string
	}{
		{"config missing", api.ConfigMissing[api.Agent](), "CONFIG_MISSING"},
		{"auth failed", api.AuthFailed[api.Agent](), "AUTH_FAILED"},
		{"forbidden", api.Forbidden[api.Agent](), "FORBIDDEN"},
		{"not found", api.NotFound[api.Agent](), "NOT_FOUND"},
		{"server error", api.ServerError[api.Agent](503), "SERVER_ERROR"},
		{"timeout", api.Timeout[api.Agent](), "TIMEOUT"},
		{"network", api.NetworkError[api.Agent]("refused"), "NETWORK_ERROR"},
		{"unexpected", api.UnexpectedError[api.Agent]("bad json"), "UNEXPECTED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := outcomeError(tc.outcome)
			var cliErr *output.CLIError
			if !errors.As(err, &cliErr) {
				t.Fatalf("outcomeError = %T, want *CLIError", err)
			}
			if cliErr.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", cliErr.Code, tc.wantCode)
			}
		})
	}
}

func TestOutcomeErrorNilOnSuccess(t *testing.T) {
	for _, o := range []api.Outcome[api.Agent]{
		api.Collected([]api.Agent{{Name: "a"}}),
		api.Collected[api.Agent](nil),
		api.Pending[api.Agent](),
	} {
		if err := outcomeError(o); err != nil {
			t.Errorf("outcomeError(%v) = %v, want nil", o.Kind, err)
		}
	}
}

func TestServerErrorCarriesStatus(t *testing.T) {
	err := outcomeError(api.ServerError[api.Agent](502))
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("message %q missing status code", err.Error())
	}
}

func TestGuideEmbedded(t *testing.T) {
	if !strings.Contains(guideMarkdown, "hackagent config set api_key") {
		t.Error("guide missing quickstart command")
	}
	if !strings.Contains(guideMarkdown, "# HackAgent Quickstart") {
		t.Error("guide missing title")
	}
}
