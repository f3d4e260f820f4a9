package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// countingTransport records how many requests pass through it.
type countingTransport struct {
	calls int
	next  http.RoundTripper
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	if t.next == nil {
		return nil, errors.New("no transport")
	}
	return t.next.RoundTrip(req)
}

func TestListAgentsConfigMissingMakesNoRequests(t *testing.T) {
	ct := &countingTransport{}
	c := NewClient("https://api.example.test", "",
		WithHTTPClient(&http.Client{Transport: ct}))

	out := c.ListAgents(context.Background())

	if out.Kind != KindConfigMissing {
		t.Fatalf("kind = %v, want %v", out.Kind, KindConfigMissing)
	}
	if ct.calls != 0 {
		t.Errorf("transport saw %d requests, want 0", ct.calls)
	}
}

func TestListAgentsClassifiesStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   Kind
	}{
		{"success", 200, `{"count":2,"results":[{"id":"a","name":"one","endpoint":"http://x"},{"id":"b","name":"two"}]}`, KindSuccess},
		{"empty", 200, `{"count":0,"results":[]}`, KindEmpty},
		{"null results", 200, `{"count":0,"results":null}`, KindEmpty},
		{"unauthorized", 401, `{"detail":"bad token"}`, KindAuthFailed},
		{"forbidden", 403, `{}`, KindForbidden},
		{"not found", 404, `{}`, KindNotFound},
		{"server error", 500, `oops`, KindServerError},
		{"rate limited", 429, `{}`, KindServerError},
		{"bad body", 200, `{"results": "not-a-list"}`, KindUnexpectedError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Authorization"); got != "Bearer hak_test" {
					t.Errorf("Authorization = %q", got)
				}
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "hak_test")
			out := c.ListAgents(context.Background())

			if out.Kind != tt.want {
				t.Fatalf("kind = %v, want %v", out.Kind, tt.want)
			}
			if tt.want == KindServerError && out.Status != tt.status {
				t.Errorf("status = %d, want %d", out.Status, tt.status)
			}
			if tt.want == KindUnexpectedError && out.Message == "" {
				t.Error("unexpected-error outcome lost its diagnostic message")
			}
		})
	}
}

func TestListAgentsSuccessItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count":3,"results":[
			{"id":"1","name":"alpha","endpoint":"https://a.example"},
			{"id":"2","name":"beta","endpoint":"https://b.example"},
			{"id":"3","name":"gamma","endpoint":""}]}`)
	}))
	defer srv.Close()

	out := NewClient(srv.URL, "hak_test").ListAgents(context.Background())
	if out.Kind != KindSuccess {
		t.Fatalf("kind = %v", out.Kind)
	}
	stats := CountAgents(out.Items)
	if stats.Total != 3 || stats.Active != 2 || stats.Inactive != 1 {
		t.Errorf("stats = %+v, want Total:3 Active:2 Inactive:1", stats)
	}
}

// timeoutErr satisfies net.Error with Timeout() == true.
type timeoutErr struct{}

func (timeoutErr) Error() string   { return "deadline exceeded" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

type errTransport struct{ err error }

func (t errTransport) RoundTrip(*http.Request) (*http.Response, error) { return nil, t.err }

func TestTransportFailureClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"net timeout", timeoutErr{}, KindTimeout},
		{"context deadline", context.DeadlineExceeded, KindTimeout},
		{"refused", errors.New("connect: connection refused"), KindNetworkError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient("http://unreachable.test", "hak_test",
				WithHTTPClient(&http.Client{Transport: errTransport{err: tt.err}}))
			out := c.ListResults(context.Background())
			if out.Kind != tt.want {
				t.Fatalf("kind = %v, want %v", out.Kind, tt.want)
			}
			if tt.want == KindNetworkError && out.Message == "" {
				t.Error("network error lost its message")
			}
		})
	}
}

func TestTruncateMessage(t *testing.T) {
	long := ""
	for i := 0; i < 300; i++ {
		long += "x"
	}
	got := TruncateMessage(long)
	if len([]rune(got)) > 200 {
		t.Errorf("truncated message still %d runes", len([]rune(got)))
	}
	if TruncateMessage("short") != "short" {
		t.Error("short message should pass through unchanged")
	}
}

func TestResultStats(t *testing.T) {
	results := []Result{
		{EvaluationStatus: StatusCompleted},
		{EvaluationStatus: StatusCompleted},
		{EvaluationStatus: StatusRunning},
		{EvaluationStatus: StatusFailed},
	}
	s := CountResults(results)
	if s.Completed != 2 || s.Running != 1 || s.Failed != 1 {
		t.Fatalf("stats = %+v", s)
	}
	if rate := s.SuccessRate(); rate != 50 {
		t.Errorf("success rate = %v, want 50", rate)
	}
	if rate := (ResultStats{}).SuccessRate(); rate != 0 {
		t.Errorf("empty success rate = %v, want 0", rate)
	}
}
