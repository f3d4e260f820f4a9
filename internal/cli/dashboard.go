package cli

import (
	"github.com/spf13/cobra"

	"github.com/NobPolish/hackagent/internal/output"
	"github.com/NobPolish/hackagent/internal/tui/dashboard"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "tui"},
		Short:   "Open the live terminal dashboard",
		Long: `Full-screen dashboard over your HackAgent workspace: agents, attack
results, API keys, and local attack templates, with per-tab auto-refresh.

Runs without an API key too; tabs then show how to connect.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := dashboard.Run(cfg, cfgFile); err != nil {
				return output.NewCLIError("dashboard exited with an error").
					WithCause(err.Error())
			}
			return nil
		},
	}
}
