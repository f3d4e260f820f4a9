package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the hosted platform endpoint.
const DefaultBaseURL = "https://api.hackagent.dev"

// DefaultTimeout bounds each request; transport failures past it are
// classified as Timeout rather than NetworkError.
const DefaultTimeout = 15 * time.Second

// Client is the authenticated connection to the platform. It is constructed
// once, holds no per-call state, and is safe to share across all tabs.
type Client struct {
	httpc   *http.Client
	baseURL string
	apiKey  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client. Intended for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// NewClient creates a platform client. An empty apiKey is allowed: the
// client is still constructed, but every call classifies as ConfigMissing
// without touching the network.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		httpc:   &http.Client{Timeout: DefaultTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether credentials are present.
func (c *Client) Configured() bool { return c.apiKey != "" }

// BaseURL returns the configured endpoint.
func (c *Client) BaseURL() string { return c.baseURL }

// ListAgents fetches the registered agents.
func (c *Client) ListAgents(ctx context.Context) Outcome[Agent] {
	return list[Agent](ctx, c, "/api/agents")
}

// ListResults fetches the attack-run results.
func (c *Client) ListResults(ctx context.Context) Outcome[Result] {
	return list[Result](ctx, c, "/api/results")
}

// ListKeys fetches the organization's API keys.
func (c *Client) ListKeys(ctx context.Context) Outcome[Key] {
	return list[Key](ctx, c, "/api/keys")
}

// Summary aggregates the collections the overview tab shows at once.
type Summary struct {
	Agents  []Agent
	Results []Result
	Keys    []Key
}

// FetchSummary fetches agents, results, and keys as one logical request for
// the overview tab. The first failed sub-fetch classifies the whole summary.
func (c *Client) FetchSummary(ctx context.Context) Outcome[Summary] {
	agents := c.ListAgents(ctx)
	if agents.Failed() {
		return RecastFailure[Agent, Summary](agents)
	}
	results := c.ListResults(ctx)
	if results.Failed() {
		return RecastFailure[Result, Summary](results)
	}
	keys := c.ListKeys(ctx)
	if keys.Failed() {
		return RecastFailure[Key, Summary](keys)
	}
	return Collected([]Summary{{
		Agents:  agents.Items,
		Results: results.Items,
		Keys:    keys.Items,
	}})
}

// envelope is the platform's paginated list wrapper.
type envelope[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// list issues one GET and classifies the response. It never retries;
// retry cadence belongs to the caller's refresh timer.
func list[T any](ctx context.Context, c *Client, path string) Outcome[T] {
	if !c.Configured() {
		return ConfigMissing[T]()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return UnexpectedError[T](err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return classifyTransport[T](err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var env envelope[T]
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return UnexpectedError[T](fmt.Sprintf("decoding %s: %v", path, err))
		}
		return Collected(env.Results)
	case resp.StatusCode == http.StatusUnauthorized:
		return AuthFailed[T]()
	case resp.StatusCode == http.StatusForbidden:
		return Forbidden[T]()
	case resp.StatusCode == http.StatusNotFound:
		return NotFound[T]()
	default:
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return ServerError[T](resp.StatusCode)
	}
}

// classifyTransport splits pre-response failures into Timeout vs NetworkError.
func classifyTransport[T any](err error) Outcome[T] {
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout[T]()
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return Timeout[T]()
	}
	return NetworkError[T](err.Error())
}
