// Package styles provides badge rendering functions for consistent UI elements.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/NobPolish/hackagent/internal/tui/theme"
)

// BadgeStyle defines the visual style of a badge
type BadgeStyle int

const (
	// BadgeStyleDefault is a standard badge with padding
	BadgeStyleDefault BadgeStyle = iota
	// BadgeStyleCompact is a minimal badge without padding
	BadgeStyleCompact
	// BadgeStylePill is a rounded pill-style badge
	BadgeStylePill
)

// BadgeOptions configures badge rendering
type BadgeOptions struct {
	Style    BadgeStyle
	Bold     bool
	ShowIcon bool
}

// DefaultBadgeOptions returns sensible defaults for badge rendering
func DefaultBadgeOptions() BadgeOptions {
	return BadgeOptions{
		Style:    BadgeStyleDefault,
		Bold:     true,
		ShowIcon: true,
	}
}

// StatusBadge renders an evaluation status badge using theme colors.
// status can be any run evaluation status ("COMPLETED", "RUNNING",
// "FAILED", "PENDING") plus "active", "inactive", and "revoked" for
// agents and keys.
func StatusBadge(status string, opts ...BadgeOptions) string {
	t := theme.Current()
	opt := DefaultBadgeOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	var bgColor lipgloss.Color
	var icon string
	var label string

	switch strings.ToLower(strings.TrimSpace(status)) {
	case "completed", "success", "done":
		bgColor = t.Success
		icon = "✓"
		label = "completed"
	case "running", "active":
		bgColor = t.Green
		icon = "●"
		label = strings.ToLower(strings.TrimSpace(status))
	case "pending", "queued":
		bgColor = t.Blue
		icon = "◐"
		label = "pending"
	case "failed", "error":
		bgColor = t.Error
		icon = "✗"
		label = "failed"
	case "inactive":
		bgColor = t.Overlay
		icon = "○"
		label = "inactive"
	case "revoked":
		bgColor = t.Red
		icon = "⊘"
		label = "revoked"
	default:
		bgColor = t.Surface1
		icon = "•"
		label = strings.ToLower(strings.TrimSpace(status))
	}

	text := label
	if opt.ShowIcon {
		text = icon + " " + label
	}

	return renderBadge(text, bgColor, t.Base, opt)
}

// TextBadge renders a simple text badge with custom colors
func TextBadge(text string, bgColor, fgColor lipgloss.Color, opts ...BadgeOptions) string {
	opt := DefaultBadgeOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}
	return renderBadge(text, bgColor, fgColor, opt)
}

// AttackTypeBadge renders a badge for an attack technique name
// ("advprefix", "prompt-injection", ...). Unknown techniques get a
// neutral surface color.
func AttackTypeBadge(attackType string, opts ...BadgeOptions) string {
	t := theme.Current()
	opt := DefaultBadgeOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	var bgColor lipgloss.Color
	var icon string

	switch strings.ToLower(attackType) {
	case "advprefix", "prefix":
		bgColor = t.Attack
		icon = "◆"
	case "prompt-injection", "injection":
		bgColor = t.Red
		icon = "◆"
	case "jailbreak":
		bgColor = t.Peach
		icon = "◆"
	default:
		bgColor = t.Surface1
		icon = "•"
	}

	text := attackType
	if opt.ShowIcon {
		text = icon + " " + attackType
	}

	return renderBadge(text, bgColor, t.Base, opt)
}

// renderBadge is the internal badge rendering function
func renderBadge(text string, bgColor, fgColor lipgloss.Color, opt BadgeOptions) string {
	style := lipgloss.NewStyle().
		Background(bgColor).
		Foreground(fgColor)

	if opt.Bold {
		style = style.Bold(true)
	}

	switch opt.Style {
	case BadgeStyleCompact:
		// No padding
	case BadgeStylePill:
		style = style.Padding(0, 2)
	default:
		style = style.Padding(0, 1)
	}

	return style.Render(text)
}

// BadgeGroup renders multiple badges in a horizontal group
func BadgeGroup(badges ...string) string {
	return strings.Join(badges, " ")
}
