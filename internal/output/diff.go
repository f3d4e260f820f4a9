package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/NobPolish/hackagent/internal/tui/theme"
)

// DiffResult holds the comparison of two attack-result response bodies.
type DiffResult struct {
	ResultA    string  `json:"result_a"`
	ResultB    string  `json:"result_b"`
	LinesA     int     `json:"lines_a"`
	LinesB     int     `json:"lines_b"`
	Similarity float64 `json:"similarity"`
	Patch      string  `json:"patch,omitempty"`

	diffs []diffmatchpatch.Diff
}

// ComputeDiff compares two response bodies and reports their similarity
// together with a unified patch. Semantic cleanup merges character noise
// into word-level runs, which reads better for LLM response text.
func ComputeDiff(idA, textA, idB, textB string) *DiffResult {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(textA, textB, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	dist := dmp.DiffLevenshtein(diffs)
	maxLen := len(textA)
	if len(textB) > maxLen {
		maxLen = len(textB)
	}
	similarity := 1.0
	if maxLen > 0 {
		similarity = 1.0 - float64(dist)/float64(maxLen)
	}

	patches := dmp.PatchMake(textA, diffs)

	return &DiffResult{
		ResultA:    idA,
		ResultB:    idB,
		LinesA:     len(strings.Split(textA, "\n")),
		LinesB:     len(strings.Split(textB, "\n")),
		Similarity: similarity,
		Patch:      dmp.PatchToText(patches),
		diffs:      diffs,
	}
}

// Identical reports whether the two texts matched exactly.
func (d *DiffResult) Identical() bool {
	return d.Similarity >= 1.0
}

// Render writes a human-readable diff: a similarity header followed by the
// inline insert/delete runs, colored when w is a terminal.
func (d *DiffResult) Render(w io.Writer) {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = f == os.Stdout && IsTerminal() && os.Getenv("NO_COLOR") == ""
	}

	fmt.Fprintf(w, "%s vs %s: %.0f%% similar (%d vs %d lines)\n\n",
		d.ResultA, d.ResultB, d.Similarity*100, d.LinesA, d.LinesB)

	if d.Identical() {
		fmt.Fprintln(w, "Responses are identical.")
		return
	}

	var ins, del lipgloss.Style
	if useColor {
		t := theme.Current()
		ins = lipgloss.NewStyle().Foreground(t.Success)
		del = lipgloss.NewStyle().Foreground(t.Error).Strikethrough(true)
	}

	for _, diff := range d.diffs {
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			if useColor {
				fmt.Fprint(w, ins.Render(diff.Text))
			} else {
				fmt.Fprintf(w, "{+%s+}", diff.Text)
			}
		case diffmatchpatch.DiffDelete:
			if useColor {
				fmt.Fprint(w, del.Render(diff.Text))
			} else {
				fmt.Fprintf(w, "[-%s-]", diff.Text)
			}
		default:
			fmt.Fprint(w, diff.Text)
		}
	}
	fmt.Fprintln(w)
}
