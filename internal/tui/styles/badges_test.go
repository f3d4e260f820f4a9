package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStatusBadge(t *testing.T) {
	statuses := []struct {
		status string
		label  string
	}{
		{"COMPLETED", "completed"},
		{"completed", "completed"},
		{"RUNNING", "running"},
		{"PENDING", "pending"},
		{"FAILED", "failed"},
		{"active", "active"},
		{"inactive", "inactive"},
		{"revoked", "revoked"},
		{"weird", "weird"},
	}

	for _, tt := range statuses {
		t.Run(tt.status, func(t *testing.T) {
			result := StatusBadge(tt.status)
			if result == "" {
				t.Errorf("StatusBadge(%q) should return non-empty string", tt.status)
			}
			if !strings.Contains(result, tt.label) {
				t.Errorf("StatusBadge(%q) = %q, want label %q", tt.status, result, tt.label)
			}
		})
	}
}

func TestAttackTypeBadge(t *testing.T) {
	types := []string{"advprefix", "prompt-injection", "jailbreak", "custom"}

	for _, at := range types {
		t.Run(at, func(t *testing.T) {
			result := AttackTypeBadge(at)
			if result == "" {
				t.Errorf("AttackTypeBadge(%q) should return non-empty string", at)
			}
			if !strings.Contains(result, at) {
				t.Errorf("AttackTypeBadge(%q) = %q, want the type name", at, result)
			}
		})
	}
}

func TestBadgeOptions(t *testing.T) {
	compact := StatusBadge("completed", BadgeOptions{Style: BadgeStyleCompact})
	pill := StatusBadge("completed", BadgeOptions{Style: BadgeStylePill})
	if compact == "" || pill == "" {
		t.Error("badges with custom options should render")
	}

	noIcon := StatusBadge("completed", BadgeOptions{ShowIcon: false})
	if strings.Contains(noIcon, "✓") {
		t.Error("StatusBadge with ShowIcon=false should omit the icon")
	}
}

func TestBadgeGroup(t *testing.T) {
	result := BadgeGroup("a", "b", "c")
	if result != "a b c" {
		t.Errorf("BadgeGroup = %q, want %q", result, "a b c")
	}
}

func TestTextBadge(t *testing.T) {
	result := TextBadge("beta", lipgloss.Color("#ff0000"), lipgloss.Color("#ffffff"))
	if result == "" {
		t.Error("TextBadge should return non-empty string")
	}
	if !strings.Contains(result, "beta") {
		t.Error("TextBadge should contain the text")
	}
}
