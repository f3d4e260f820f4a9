package api

import "time"

// Evaluation statuses reported by the platform for attack results.
const (
	StatusCompleted = "COMPLETED"
	StatusRunning   = "RUNNING"
	StatusFailed    = "FAILED"
)

// Agent is a registered target agent on the platform.
type Agent struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	AgentType    string            `json:"agent_type"`
	Endpoint     string            `json:"endpoint"`
	Description  string            `json:"description"`
	Organization string            `json:"organization"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// Active reports whether the agent has a reachable endpoint configured.
func (a Agent) Active() bool { return a.Endpoint != "" }

// Result is one attack-run evaluation.
type Result struct {
	ID               string    `json:"id"`
	RunID            string    `json:"run_id"`
	AgentName        string    `json:"agent_name"`
	AttackType       string    `json:"attack_type"`
	EvaluationStatus string    `json:"evaluation_status"`
	ResponseBody     string    `json:"response_body"`
	CreatedAt        time.Time `json:"created_at"`
}

// Key is an API key registered for the authenticated organization.
type Key struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Prefix    string    `json:"prefix"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// AgentStats summarizes a collection of agents.
type AgentStats struct {
	Total    int
	Active   int
	Inactive int
}

// CountAgents derives activity counts from an agent snapshot.
func CountAgents(agents []Agent) AgentStats {
	s := AgentStats{Total: len(agents)}
	for _, a := range agents {
		if a.Active() {
			s.Active++
		}
	}
	s.Inactive = s.Total - s.Active
	return s
}

// ResultStats summarizes a collection of results.
type ResultStats struct {
	Total     int
	Completed int
	Running   int
	Failed    int
}

// CountResults derives per-status counts from a result snapshot.
func CountResults(results []Result) ResultStats {
	s := ResultStats{Total: len(results)}
	for _, r := range results {
		switch r.EvaluationStatus {
		case StatusCompleted:
			s.Completed++
		case StatusRunning:
			s.Running++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// SuccessRate returns the completed share as a percentage, 0 when empty.
func (s ResultStats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}
