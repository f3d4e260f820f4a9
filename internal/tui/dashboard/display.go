package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/NobPolish/hackagent/internal/tui/components"
	"github.com/NobPolish/hackagent/internal/tui/icons"
	"github.com/NobPolish/hackagent/internal/tui/layout"
	"github.com/NobPolish/hackagent/internal/tui/render"
	"github.com/NobPolish/hackagent/internal/tui/styles"
	"github.com/NobPolish/hackagent/internal/tui/theme"
)

// Frame carries the per-render context the shell hands each tab.
type Frame struct {
	Width   int
	Height  int
	Theme   theme.Theme
	Styles  theme.Styles
	Icons   icons.IconSet
	Tick    int
	Spinner string
}

const minColWidth = 6

// renderDisplay draws a DisplayModel: stats, banner, table, detail. Wide
// terminals get a side-by-side table/detail split; narrow ones stack them.
// scroll is tab-owned so the window survives re-renders.
func renderDisplay(dm render.DisplayModel, selected int, scroll *int, f Frame) string {
	var sections []string

	if stats := renderStats(dm.Stats, f); stats != "" {
		sections = append(sections, stats, "")
	}
	if banner := renderBanner(dm, f); banner != "" {
		sections = append(sections, banner)
	}

	tier := layout.TierForWidth(f.Width)
	if tier >= layout.TierSplit {
		leftW, rightW := layout.SplitProportions(f.Width)
		table := renderTable(dm, selected, scroll, leftW, f)
		detail := renderDetail(dm, rightW, f)
		body := lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(leftW).Render(table),
			"    ",
			lipgloss.NewStyle().Width(rightW).Render(detail),
		)
		sections = append(sections, body)
	} else {
		sections = append(sections, renderTable(dm, selected, scroll, f.Width, f))
		if dm.Detail != "" && selected >= 0 {
			sections = append(sections, "", renderDetail(dm, f.Width, f))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderStats(stats []render.Stat, f Frame) string {
	if len(stats) == 0 {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(f.Theme.Subtext)
	value := lipgloss.NewStyle().Foreground(f.Theme.Text).Bold(true)
	sep := lipgloss.NewStyle().Foreground(f.Theme.Surface1).Render(" │ ")

	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, label.Render(s.Label+" ")+value.Render(s.Value))
	}
	return strings.Join(parts, sep)
}

func renderBanner(dm render.DisplayModel, f Frame) string {
	if dm.Banner == "" {
		return ""
	}
	text := styles.Truncate(dm.Banner, f.Width-4)
	switch dm.BannerKind {
	case render.BannerLoading:
		return f.Spinner + " " + lipgloss.NewStyle().Foreground(f.Theme.Subtext).Render(text)
	case render.BannerError:
		return components.ErrorState(text, "", f.Width)
	case render.BannerEmpty:
		return components.RenderEmptyState(components.EmptyStateOptions{
			Icon:  components.IconEmpty,
			Title: dm.Banner,
			Width: f.Width,
		})
	default:
		return lipgloss.NewStyle().Foreground(f.Theme.Overlay).Render(text)
	}
}

// renderTable windows the rows around the selection and truncates cells to
// the fitted column widths.
func renderTable(dm render.DisplayModel, selected int, scroll *int, width int, f Frame) string {
	if len(dm.Columns) == 0 || len(dm.Rows) == 0 {
		return ""
	}
	widths := fitColumns(dm.Columns, dm.Rows, width)

	visible := f.Height - 9
	if visible < 3 {
		visible = 3
	}
	first := windowRows(len(dm.Rows), visible, selected, scroll)
	last := first + visible
	if last > len(dm.Rows) {
		last = len(dm.Rows)
	}

	headerStyle := lipgloss.NewStyle().Foreground(f.Theme.Primary).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(f.Theme.Text)
	selStyle := lipgloss.NewStyle().Foreground(f.Theme.Base).Background(f.Theme.Primary).Bold(true)

	var b strings.Builder
	b.WriteString(headerStyle.Render(formatRow(dm.Columns, widths)))
	b.WriteString("\n")
	b.WriteString(styles.Divider(min(width, sum(widths)+2*(len(widths)-1)), "default", f.Theme.Surface1))
	b.WriteString("\n")

	for i := first; i < last; i++ {
		line := formatRow(dm.Rows[i], widths)
		if i == selected {
			b.WriteString(selStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(dm.Rows) > visible {
		b.WriteString(components.ScrollFooter(components.ScrollState{
			FirstVisible: first,
			LastVisible:  last - 1,
			TotalItems:   len(dm.Rows),
		}, width))
	}
	return strings.TrimRight(b.String(), "\n")
}

// windowRows picks the first visible row so the selection stays on screen,
// moving the previous window as little as possible.
func windowRows(total, visible, selected int, scroll *int) int {
	if total <= visible {
		*scroll = 0
		return 0
	}
	first := *scroll
	if first > total-visible {
		first = total - visible
	}
	if first < 0 {
		first = 0
	}
	if selected >= 0 {
		if selected < first {
			first = selected
		} else if selected >= first+visible {
			first = selected - visible + 1
		}
	}
	*scroll = first
	return first
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = runewidth.FillRight(runewidth.Truncate(cell, w, "…"), w)
	}
	return strings.Join(parts, "  ")
}

// fitColumns sizes columns to content, then shrinks the widest ones until
// the row fits the available width.
func fitColumns(columns []string, rows [][]string, width int) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	avail := width - 2*(len(columns)-1)
	for sum(widths) > avail {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColWidth {
			break
		}
		widths[widest]--
	}
	return widths
}

func renderDetail(dm render.DisplayModel, width int, f Frame) string {
	if dm.Detail == "" {
		return ""
	}
	title := lipgloss.NewStyle().Foreground(f.Theme.Secondary).Bold(true).Render("Details")
	body := lipgloss.NewStyle().Foreground(f.Theme.Text).
		Render(wordwrap.String(dm.Detail, max(width-2, 10)))

	parts := []string{title, styles.Divider(width, "default", f.Theme.Surface1)}
	if badges := detailBadges(dm); badges != "" {
		parts = append(parts, badges)
	}
	parts = append(parts, body)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// detailBadges builds the badge row for the selected item: a status badge
// when the entity has a lifecycle state, an attack badge when it names a
// technique.
func detailBadges(dm render.DisplayModel) string {
	var badges []string
	if dm.DetailStatus != "" {
		badges = append(badges, styles.StatusBadge(dm.DetailStatus))
	}
	if dm.DetailAttack != "" {
		badges = append(badges, styles.AttackTypeBadge(dm.DetailAttack))
	}
	return styles.BadgeGroup(badges...)
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
