package cli

import (
	"github.com/spf13/cobra"

	"github.com/NobPolish/hackagent/internal/api"
	"github.com/NobPolish/hackagent/internal/output"
)

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Work with the organization's API keys",
	}
	cmd.AddCommand(newKeysListCmd())
	return cmd
}

func newKeysListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List API keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := fetchCtx()
			defer cancel()

			outcome := client().ListKeys(ctx)
			if err := outcomeError(outcome); err != nil {
				return err
			}

			f := formatter()
			if outcome.Kind == api.KindEmpty && f.Format() == output.FormatTable {
				cmd.Println("No API keys found for this organization.")
				return nil
			}
			items := outcome.Items
			if items == nil {
				items = []api.Key{}
			}
			return f.List(keyHeaders, keyRows(items), items)
		},
	}
}

var keyHeaders = []string{"NAME", "PREFIX", "STATUS", "CREATED"}

func keyRows(keys []api.Key) [][]string {
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		status := "active"
		if k.Revoked {
			status = "revoked"
		}
		rows = append(rows, []string{
			k.Name,
			k.Prefix,
			status,
			output.FormatTime(k.CreatedAt),
		})
	}
	return rows
}
