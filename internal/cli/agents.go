package cli

import (
	"github.com/spf13/cobra"

	"github.com/NobPolish/hackagent/internal/api"
	"github.com/NobPolish/hackagent/internal/output"
)

func newAgentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Work with registered target agents",
	}
	cmd.AddCommand(newAgentsListCmd())
	return cmd
}

func newAgentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered agents",
		Example: `  hackagent agents list
  hackagent agents list -o json | jq '.[].name'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := fetchCtx()
			defer cancel()

			outcome := client().ListAgents(ctx)
			if err := outcomeError(outcome); err != nil {
				return err
			}

			f := formatter()
			if outcome.Kind == api.KindEmpty && f.Format() == output.FormatTable {
				cmd.Println("No agents registered yet. Create one at https://hackagent.dev")
				return nil
			}
			items := outcome.Items
			if items == nil {
				items = []api.Agent{}
			}
			return f.List(agentHeaders, agentRows(items), items)
		},
	}
}

var agentHeaders = []string{"NAME", "TYPE", "STATUS", "ENDPOINT", "CREATED"}

func agentRows(agents []api.Agent) [][]string {
	rows := make([][]string, 0, len(agents))
	for _, a := range agents {
		status := "inactive"
		if a.Active() {
			status = "active"
		}
		rows = append(rows, []string{
			a.Name,
			a.AgentType,
			status,
			output.Truncate(a.Endpoint, 48),
			output.FormatTime(a.CreatedAt),
		})
	}
	return rows
}
