package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/NobPolish/hackagent/internal/tui/icons"
	"github.com/NobPolish/hackagent/internal/tui/layout"
	"github.com/NobPolish/hackagent/internal/tui/theme"
)

type StateKind int

const (
	StateEmpty StateKind = iota
	StateLoading
	StateError
)

// EmptyStateIcon represents contextual icons for empty states.
type EmptyStateIcon string

const (
	// IconWaiting indicates data not yet available (◎)
	IconWaiting EmptyStateIcon = "waiting"
	// IconEmpty indicates checked but nothing found (○)
	IconEmpty EmptyStateIcon = "empty"
	// IconExternal indicates needs external action (◇)
	IconExternal EmptyStateIcon = "external"
	// IconSuccess indicates empty is good state (✓)
	IconSuccess EmptyStateIcon = "success"
	// IconUnknown indicates couldn't determine (?)
	IconUnknown EmptyStateIcon = "unknown"
)

// EmptyStateOptions configures enhanced empty state rendering.
type EmptyStateOptions struct {
	Icon        EmptyStateIcon // Contextual icon type
	Title       string         // Primary message (required)
	Description string         // Explanatory text (optional)
	Action      string         // Suggested action (optional)
	Width       int            // Available width
	Centered    bool           // Center in container (default: true)
}

// resolveEmptyIcon returns the appropriate icon string for an EmptyStateIcon.
func resolveEmptyIcon(icon EmptyStateIcon) string {
	ic := icons.Current()
	switch icon {
	case IconWaiting:
		return ic.Target
	case IconEmpty:
		return ic.Circle
	case IconExternal:
		return ic.Run
	case IconSuccess:
		return ic.Check
	case IconUnknown:
		return ic.Question
	default:
		return ic.Info
	}
}

// RenderEmptyState renders an enhanced multi-line empty state.
// Format:
//
//	       ◎
//	  No agents yet
//
//	Agents will appear once
//	 you register one
func RenderEmptyState(opts EmptyStateOptions) string {
	t := theme.Current()

	icon := resolveEmptyIcon(opts.Icon)

	iconStyle := lipgloss.NewStyle().Foreground(t.Overlay)
	titleStyle := lipgloss.NewStyle().Foreground(t.Subtext).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.Overlay).Italic(true)
	actionStyle := lipgloss.NewStyle().Foreground(t.Blue).Italic(true)

	// Special styling for success state
	if opts.Icon == IconSuccess {
		iconStyle = iconStyle.Foreground(t.Green)
		titleStyle = titleStyle.Foreground(t.Green)
	}

	var lines []string

	lines = append(lines, iconStyle.Render(icon))

	title := opts.Title
	if title == "" {
		title = "Nothing to show"
	}
	lines = append(lines, titleStyle.Render(title))

	if opts.Description != "" {
		lines = append(lines, "") // blank line before description
		desc := opts.Description
		if opts.Width > 0 && len(desc) > opts.Width-4 {
			desc = layout.TruncateRunes(desc, opts.Width-4, "…")
		}
		lines = append(lines, descStyle.Render(desc))
	}

	if opts.Action != "" {
		action := opts.Action
		if opts.Width > 0 && len(action) > opts.Width-4 {
			action = layout.TruncateRunes(action, opts.Width-4, "…")
		}
		lines = append(lines, actionStyle.Render(action))
	}

	content := strings.Join(lines, "\n")

	centered := opts.Centered
	if !centered && opts.Width > 0 {
		return lipgloss.NewStyle().PaddingLeft(2).Render(content)
	}

	if opts.Width > 0 {
		return lipgloss.NewStyle().
			Width(opts.Width).
			Align(lipgloss.Center).
			Render(content)
	}

	return content
}

type StateOptions struct {
	Kind    StateKind
	Icon    string
	Message string
	Hint    string
	Width   int
	Align   lipgloss.Position
}

func RenderState(opts StateOptions) string {
	t := theme.Current()
	ic := icons.Current()

	align := opts.Align
	indent := "  "
	if align == lipgloss.Center {
		indent = ""
	}

	icon := strings.TrimSpace(opts.Icon)
	lineStyle := lipgloss.NewStyle().Foreground(t.Overlay).Italic(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.Overlay).Italic(true)

	message := strings.TrimSpace(opts.Message)
	hint := strings.TrimSpace(opts.Hint)

	switch opts.Kind {
	case StateLoading:
		lineStyle = lipgloss.NewStyle().Foreground(t.Subtext).Italic(true)
		if message == "" {
			message = "Loading…"
		}
		if icon == "" {
			icon = strings.TrimSpace(ic.Gear)
			if icon == "" {
				icon = "…"
			}
		}
	case StateError:
		lineStyle = lipgloss.NewStyle().Foreground(t.Red).Italic(true)
		hintStyle = lipgloss.NewStyle().Foreground(t.Overlay).Italic(true)
		if message == "" {
			message = "Something went wrong"
		}
		if icon == "" {
			icon = strings.TrimSpace(ic.Warning)
			if icon == "" {
				icon = "!"
			}
		}
	default:
		if message == "" {
			message = "Nothing to show"
		}
		if icon == "" {
			icon = strings.TrimSpace(ic.Info)
			if icon == "" {
				icon = "i"
			}
		}
	}

	width := opts.Width
	if width < 0 {
		width = 0
	}

	prefix := indent + icon
	if icon != "" {
		prefix += " "
	}

	available := width
	if available > 0 {
		available -= lipgloss.Width(prefix)
		if available < 0 {
			available = 0
		}
	}

	if available > 0 {
		message = layout.TruncateRunes(message, available, "…")
	}

	lines := []string{lineStyle.Render(prefix + message)}

	if hint != "" {
		hintPrefix := indent
		hAvailable := width
		if hAvailable > 0 {
			hAvailable -= lipgloss.Width(hintPrefix)
			if hAvailable < 0 {
				hAvailable = 0
			}
		}
		if hAvailable > 0 {
			hint = layout.TruncateRunes(hint, hAvailable, "…")
		}
		lines = append(lines, hintStyle.Render(hintPrefix+hint))
	}

	rendered := strings.Join(lines, "\n")
	if width > 0 && (align == lipgloss.Center || align == lipgloss.Right) {
		return lipgloss.NewStyle().Width(width).Align(align).Render(rendered)
	}

	return rendered
}

func LoadingState(message string, width int) string {
	return RenderState(StateOptions{Kind: StateLoading, Message: message, Width: width})
}

func ErrorState(message, hint string, width int) string {
	return RenderState(StateOptions{Kind: StateError, Message: message, Hint: hint, Width: width})
}
