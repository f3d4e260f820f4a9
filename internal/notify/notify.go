// Package notify delivers hackagent events to system-level channels:
// desktop notifications, webhooks, shell commands, and log files. These are
// distinct from the dashboard's in-app toasts, which stay inside the TUI.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"text/template"
	"time"
)

// EventType represents the type of notification event
type EventType string

const (
	EventAPIUnreachable EventType = "api.unreachable" // Platform did not answer
	EventAuthFailed     EventType = "auth.failed"     // API key rejected
	EventRunCompleted   EventType = "run.completed"   // Attack run finished
	EventRunFailed      EventType = "run.failed"      // Attack run errored
)

// Event represents a notification event
type Event struct {
	Type       EventType         `json:"type"`
	Timestamp  time.Time         `json:"timestamp"`
	Agent      string            `json:"agent,omitempty"`
	AttackType string            `json:"attack_type,omitempty"`
	RunID      string            `json:"run_id,omitempty"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
}

// Config holds notification configuration
type Config struct {
	Enabled bool     `toml:"enabled"`
	Events  []string `toml:"events"` // Which events to notify on

	Desktop DesktopConfig `toml:"desktop"`
	Webhook WebhookConfig `toml:"webhook"`
	Shell   ShellConfig   `toml:"shell"`
	Log     LogConfig     `toml:"log"`
}

// DesktopConfig configures desktop notifications
type DesktopConfig struct {
	Enabled bool   `toml:"enabled"`
	Title   string `toml:"title"` // Default title prefix
}

// WebhookConfig configures webhook notifications
type WebhookConfig struct {
	Enabled  bool              `toml:"enabled"`
	URL      string            `toml:"url"`
	Template string            `toml:"template"` // Go template for payload
	Method   string            `toml:"method"`   // HTTP method (default POST)
	Headers  map[string]string `toml:"headers"`
}

// ShellConfig configures shell command notifications
type ShellConfig struct {
	Enabled  bool   `toml:"enabled"`
	Command  string `toml:"command"`   // Command to run
	PassJSON bool   `toml:"pass_json"` // Pass event as JSON stdin
}

// LogConfig configures log file notifications
type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"` // Log file path
}

// DefaultConfig returns a default notification configuration
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Events: []string{
			string(EventRunCompleted),
			string(EventRunFailed),
			string(EventAPIUnreachable),
			string(EventAuthFailed),
		},
		Desktop: DesktopConfig{
			Enabled: true,
			Title:   "HackAgent",
		},
		Webhook: WebhookConfig{
			Enabled:  false,
			Method:   "POST",
			Template: `{"text": "HackAgent: {{.Type}} - {{.Message}}"}`,
		},
		Shell: ShellConfig{
			Enabled:  false,
			PassJSON: true,
		},
		Log: LogConfig{
			Enabled: false,
			Path:    "~/.config/hackagent/notifications.log",
		},
	}
}

// Notifier sends notifications through configured channels
type Notifier struct {
	config     Config
	enabledSet map[EventType]bool
	mu         sync.Mutex
	httpClient *http.Client
}

// New creates a new Notifier with the given configuration
func New(cfg Config) *Notifier {
	n := &Notifier{
		config:     cfg,
		enabledSet: make(map[EventType]bool),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, e := range cfg.Events {
		n.enabledSet[EventType(e)] = true
	}
	return n
}

// Notify sends a notification for the given event through every enabled
// channel in parallel. Channel failures are collected, never fatal to the
// caller's flow.
func (n *Notifier) Notify(event Event) error {
	if !n.config.Enabled {
		return nil
	}
	if !n.enabledSet[event.Type] {
		return nil
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	var (
		wg    sync.WaitGroup
		errs  []error
		errMu sync.Mutex
	)
	addErr := func(err error) {
		if err != nil {
			errMu.Lock()
			errs = append(errs, err)
			errMu.Unlock()
		}
	}

	if n.config.Desktop.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := n.sendDesktop(event); err != nil {
				addErr(fmt.Errorf("desktop: %w", err))
			}
		}()
	}

	if n.config.Webhook.Enabled && n.config.Webhook.URL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := n.sendWebhook(event); err != nil {
				addErr(fmt.Errorf("webhook: %w", err))
			}
		}()
	}

	if n.config.Shell.Enabled && n.config.Shell.Command != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := n.sendShell(event); err != nil {
				addErr(fmt.Errorf("shell: %w", err))
			}
		}()
	}

	if n.config.Log.Enabled && n.config.Log.Path != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := n.sendLog(event); err != nil {
				addErr(fmt.Errorf("log: %w", err))
			}
		}()
	}

	wg.Wait()

	if len(errs) > 0 {
		return fmt.Errorf("notification errors: %v", errs)
	}
	return nil
}

// sendDesktop sends a desktop notification
func (n *Notifier) sendDesktop(event Event) error {
	title := n.config.Desktop.Title
	if title == "" {
		title = "HackAgent"
	}
	if event.Agent != "" {
		title = fmt.Sprintf("%s [%s]", title, event.Agent)
	}

	message := event.Message
	if message == "" {
		message = string(event.Type)
	}

	switch runtime.GOOS {
	case "darwin":
		return sendMacOSNotification(title, message)
	case "linux":
		return sendLinuxNotification(title, message)
	default:
		return fmt.Errorf("desktop notifications not supported on %s", runtime.GOOS)
	}
}

// sendMacOSNotification sends a notification on macOS using osascript
func sendMacOSNotification(title, message string) error {
	script := fmt.Sprintf(`display notification %q with title %q`, message, title)
	cmd := exec.Command("osascript", "-e", script)
	return cmd.Run()
}

// sendLinuxNotification sends a notification on Linux using notify-send
func sendLinuxNotification(title, message string) error {
	if _, err := exec.LookPath("notify-send"); err != nil {
		return fmt.Errorf("notify-send not found")
	}
	cmd := exec.Command("notify-send", title, message)
	return cmd.Run()
}

// sendWebhook sends a webhook notification
func (n *Notifier) sendWebhook(event Event) error {
	tmplStr := n.config.Webhook.Template
	if tmplStr == "" {
		tmplStr = `{"event":"{{.Type}}","message":"{{.Message}}","agent":"{{.Agent}}","timestamp":"{{.Timestamp}}"}`
	}

	tmpl, err := template.New("webhook").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, event); err != nil {
		return fmt.Errorf("template execution failed: %w", err)
	}

	method := n.config.Webhook.Method
	if method == "" {
		method = "POST"
	}

	req, err := http.NewRequest(method, n.config.Webhook.URL, &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range n.config.Webhook.Headers {
		req.Header.Set(k, v)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// sendShell executes a shell command notification
func (n *Notifier) sendShell(event Event) error {
	cmdStr := n.config.Shell.Command
	if strings.HasPrefix(cmdStr, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			cmdStr = filepath.Join(home, cmdStr[1:])
		}
	}

	cmd := exec.Command("sh", "-c", cmdStr)

	if n.config.Shell.PassJSON {
		eventJSON, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		cmd.Stdin = bytes.NewReader(eventJSON)
	}

	cmd.Env = append(os.Environ(),
		fmt.Sprintf("HACKAGENT_EVENT_TYPE=%s", event.Type),
		fmt.Sprintf("HACKAGENT_EVENT_MESSAGE=%s", event.Message),
		fmt.Sprintf("HACKAGENT_EVENT_AGENT=%s", event.Agent),
		fmt.Sprintf("HACKAGENT_EVENT_ATTACK=%s", event.AttackType),
		fmt.Sprintf("HACKAGENT_EVENT_RUN=%s", event.RunID),
	)

	return cmd.Run()
}

// sendLog appends to a log file
func (n *Notifier) sendLog(event Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	path := n.config.Log.Path
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s: %s",
		event.Timestamp.Format(time.RFC3339),
		event.Type,
		event.Message,
	)
	if event.Agent != "" {
		line = fmt.Sprintf("[%s] [%s] %s: %s",
			event.Timestamp.Format(time.RFC3339),
			event.Agent,
			event.Type,
			event.Message,
		)
	}

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("failed to write to log: %w", err)
	}
	return nil
}

// Helper functions for creating common events

// NewAPIUnreachableEvent creates an event for a platform connectivity loss.
func NewAPIUnreachableEvent(baseURL, message string) Event {
	return Event{
		Type:    EventAPIUnreachable,
		Message: message,
		Details: map[string]string{"base_url": baseURL},
	}
}

// NewAuthFailedEvent creates an event for a rejected API key.
func NewAuthFailedEvent(baseURL string) Event {
	return Event{
		Type:    EventAuthFailed,
		Message: "API key was rejected; run: hackagent config set api_key <key>",
		Details: map[string]string{"base_url": baseURL},
	}
}

// NewRunCompletedEvent creates an event for a finished attack run.
func NewRunCompletedEvent(agent, attackType, runID string) Event {
	return Event{
		Type:       EventRunCompleted,
		Agent:      agent,
		AttackType: attackType,
		RunID:      runID,
		Message:    fmt.Sprintf("%s run against %s completed", attackType, agent),
	}
}

// NewRunFailedEvent creates an event for a failed attack run.
func NewRunFailedEvent(agent, attackType, runID, reason string) Event {
	return Event{
		Type:       EventRunFailed,
		Agent:      agent,
		AttackType: attackType,
		RunID:      runID,
		Message:    fmt.Sprintf("%s run against %s failed: %s", attackType, agent, reason),
		Details:    map[string]string{"reason": reason},
	}
}
