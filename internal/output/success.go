package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/NobPolish/hackagent/internal/tui/theme"
)

// Suggestion represents a "what next" command suggestion.
type Suggestion struct {
	Command     string // the command to run (e.g., "hackagent dashboard")
	Description string // brief description (e.g., "Watch runs live")
}

// SuccessFooter prints a "What's next?" section with suggested commands.
// Skips output when stdout is piped, so scripts never see it.
func SuccessFooter(suggestions ...Suggestion) {
	PrintSuccessFooter(os.Stdout, suggestions...)
}

// PrintSuccessFooter prints a "What's next?" footer to the given writer.
func PrintSuccessFooter(w io.Writer, suggestions ...Suggestion) {
	if len(suggestions) == 0 {
		return
	}
	if f, ok := w.(*os.File); ok {
		if !term.IsTerminal(int(f.Fd())) {
			return
		}
	}

	useColor := os.Getenv("NO_COLOR") == ""

	fmt.Fprintln(w)
	if useColor {
		t := theme.Current()
		headerStyle := lipgloss.NewStyle().Foreground(t.Subtext).Bold(true)
		cmdStyle := lipgloss.NewStyle().Foreground(t.Info)
		descStyle := lipgloss.NewStyle().Foreground(t.Overlay)

		fmt.Fprintln(w, headerStyle.Render("What's next?"))
		for _, s := range suggestions {
			fmt.Fprintf(w, "  %s  %s\n",
				cmdStyle.Render(s.Command),
				descStyle.Render("# "+s.Description))
		}
		return
	}

	fmt.Fprintln(w, "What's next?")
	for _, s := range suggestions {
		fmt.Fprintf(w, "  %s  # %s\n", s.Command, s.Description)
	}
}
