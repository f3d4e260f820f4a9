package cli

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/NobPolish/hackagent/internal/output"
)

//go:embed guide.md
var guideMarkdown string

func newGuideCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Read the quickstart guide in your terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain || !output.IsTerminal() {
				fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
				return nil
			}

			width := 100
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w < width {
				width = w
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
				return nil
			}
			rendered, err := renderer.Render(guideMarkdown)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown without styling")
	return cmd
}
