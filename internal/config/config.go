// Package config loads and persists hackagent's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/NobPolish/hackagent/internal/notify"
	"github.com/NobPolish/hackagent/internal/util"
)

// Output formats accepted for one-shot listing commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// Config represents the main configuration.
type Config struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	OutputFormat   string `toml:"output_format"`   // table, json, or csv
	TimeoutSeconds int    `toml:"timeout_seconds"` // per-request timeout

	Refresh       RefreshConfig `toml:"refresh"`
	Attacks       AttacksConfig `toml:"attacks"`
	Notifications notify.Config `toml:"notifications"`
}

// RefreshConfig holds per-tab auto-refresh intervals as human-friendly
// duration strings (30s, 5m, 1h).
type RefreshConfig struct {
	Enabled  bool   `toml:"enabled"`
	Overview string `toml:"overview"`
	Agents   string `toml:"agents"`
	Results  string `toml:"results"`
	Keys     string `toml:"keys"`
}

// AttacksConfig configures local attack-template discovery.
type AttacksConfig struct {
	TemplateDirs []string `toml:"template_dirs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		BaseURL:        "https://api.hackagent.dev",
		OutputFormat:   FormatTable,
		TimeoutSeconds: 15,
		Refresh: RefreshConfig{
			Enabled:  true,
			Overview: "5s",
			Agents:   "10s",
			Results:  "15s",
			Keys:     "30s",
		},
		Attacks: AttacksConfig{
			TemplateDirs: []string{filepath.Join(filepath.Dir(DefaultPath()), "attacks")},
		},
		Notifications: notify.DefaultConfig(),
	}
	applyEnvOverrides(cfg)
	return cfg
}

// DefaultPath returns the config file path, honoring XDG_CONFIG_HOME.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hackagent", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hackagent", "config.toml")
}

// Load reads the config at path (DefaultPath when empty). A missing file is
// not an error: the defaults are returned so first-run commands still work
// and the dashboard can surface the missing key itself.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv("HACKAGENT_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if base := os.Getenv("HACKAGENT_API_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}
	if format := os.Getenv("HACKAGENT_OUTPUT_FORMAT"); format != "" {
		cfg.OutputFormat = strings.ToLower(format)
	}
}

// Validate checks field values that have a closed domain.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case FormatTable, FormatJSON, FormatCSV:
	default:
		return fmt.Errorf("invalid output_format %q (want table, json, or csv)", c.OutputFormat)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	for _, field := range []struct{ name, value string }{
		{"refresh.overview", c.Refresh.Overview},
		{"refresh.agents", c.Refresh.Agents},
		{"refresh.results", c.Refresh.Results},
		{"refresh.keys", c.Refresh.Keys},
	} {
		if field.value == "" {
			continue
		}
		if _, err := util.ParseDuration(field.value); err != nil {
			return fmt.Errorf("invalid %s: %w", field.name, err)
		}
	}
	return nil
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// interval parses a refresh field, falling back to def when the field is
// empty or malformed.
func interval(s string, def time.Duration) time.Duration {
	d, err := util.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// OverviewInterval returns the overview tab refresh interval.
func (c *Config) OverviewInterval() time.Duration { return interval(c.Refresh.Overview, 5*time.Second) }

// AgentsInterval returns the agents tab refresh interval.
func (c *Config) AgentsInterval() time.Duration { return interval(c.Refresh.Agents, 10*time.Second) }

// ResultsInterval returns the results tab refresh interval.
func (c *Config) ResultsInterval() time.Duration { return interval(c.Refresh.Results, 15*time.Second) }

// KeysInterval returns the keys tab refresh interval.
func (c *Config) KeysInterval() time.Duration { return interval(c.Refresh.Keys, 30*time.Second) }

// RedactedKey returns the API key masked for display: the first 8 characters
// followed by asterisks, or a placeholder when unset.
func (c *Config) RedactedKey() string {
	if c.APIKey == "" {
		return "(not set)"
	}
	runes := []rune(c.APIKey)
	if len(runes) <= 8 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:8]) + strings.Repeat("*", 8)
}

// Save writes the config as TOML, creating parent directories as needed.
// The file is written 0600 since it holds the API key.
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# hackagent configuration\n")
	sb.WriteString("# Get an API key at https://hackagent.dev/settings\n\n")
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return os.Rename(tmp, path)
}

// Set assigns a top-level field by its TOML key. Used by `config set`.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api_key":
		c.APIKey = value
	case "base_url":
		c.BaseURL = value
	case "output_format":
		c.OutputFormat = strings.ToLower(value)
		return c.Validate()
	case "timeout_seconds":
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
			return fmt.Errorf("timeout_seconds: %q is not a number", value)
		}
		c.TimeoutSeconds = n
		return c.Validate()
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
