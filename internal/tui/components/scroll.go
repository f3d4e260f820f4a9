package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/NobPolish/hackagent/internal/tui/theme"
)

// ScrollState tracks scroll position within a viewport.
type ScrollState struct {
	FirstVisible int // Index of first visible item (0-indexed)
	LastVisible  int // Index of last visible item (0-indexed, inclusive)
	TotalItems   int // Total number of items
}

// HasMoreAbove returns true if there's content above the viewport.
func (s ScrollState) HasMoreAbove() bool {
	return s.FirstVisible > 0
}

// HasMoreBelow returns true if there's content below the viewport.
func (s ScrollState) HasMoreBelow() bool {
	return s.TotalItems > 0 && s.LastVisible < s.TotalItems-1
}

// AllVisible returns true if all items fit in the viewport.
func (s ScrollState) AllVisible() bool {
	return !s.HasMoreAbove() && !s.HasMoreBelow()
}

// Indicator returns the arrow indicator string based on scroll state.
// Returns "▲▼" when content above and below, "▲" for above only,
// "▼" for below only, or "" when all content is visible.
func (s ScrollState) Indicator() string {
	switch {
	case s.HasMoreAbove() && s.HasMoreBelow():
		return "▲▼"
	case s.HasMoreAbove():
		return "▲"
	case s.HasMoreBelow():
		return "▼"
	default:
		return ""
	}
}

// RenderScrollIndicator renders a scroll position indicator.
// Format depends on width:
// - Wide: "Showing 1-5 of 20 ▼"
// - Medium: "(1-5/20) ▼"
// - Narrow: "▼"
// Returns empty string if all items are visible.
func RenderScrollIndicator(state ScrollState, width int) string {
	if state.AllVisible() {
		return ""
	}

	t := theme.Current()

	textStyle := lipgloss.NewStyle().Foreground(t.Overlay)
	arrowStyle := lipgloss.NewStyle().Foreground(t.Blue).Bold(true)

	indicator := state.Indicator()

	first := state.FirstVisible + 1 // 1-indexed for display
	last := state.LastVisible + 1
	total := state.TotalItems

	var countStr string
	switch {
	case width >= 25:
		countStr = fmt.Sprintf("Showing %d-%d of %d", first, last, total)
	case width >= 15:
		countStr = fmt.Sprintf("(%d-%d/%d)", first, last, total)
	default:
		return arrowStyle.Render(indicator)
	}

	if indicator != "" {
		return textStyle.Render(countStr) + " " + arrowStyle.Render(indicator)
	}
	return textStyle.Render(countStr)
}

// ScrollFooter renders a complete footer line with the scroll indicator
// right-aligned within the available width.
func ScrollFooter(state ScrollState, width int) string {
	if state.AllVisible() {
		return ""
	}

	indicator := RenderScrollIndicator(state, width)
	if indicator == "" {
		return ""
	}

	indicatorWidth := lipgloss.Width(indicator)
	if indicatorWidth >= width {
		return indicator
	}

	padding := width - indicatorWidth
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Render(indicator)
}
