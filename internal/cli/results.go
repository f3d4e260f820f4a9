package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/NobPolish/hackagent/internal/api"
	"github.com/NobPolish/hackagent/internal/output"
)

func newResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Work with attack-run results",
	}
	cmd.AddCommand(newResultsListCmd(), newResultsDiffCmd())
	return cmd
}

func newResultsListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attack results",
		Example: `  hackagent results list
  hackagent results list --status FAILED
  hackagent results list -o csv > results.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := fetchCtx()
			defer cancel()

			outcome := client().ListResults(ctx)
			if err := outcomeError(outcome); err != nil {
				return err
			}

			items := filterResults(outcome.Items, status)
			f := formatter()
			if len(items) == 0 && f.Format() == output.FormatTable {
				cmd.Println("No attack results yet. Launch a run to see evaluations here.")
				return nil
			}
			if items == nil {
				items = []api.Result{}
			}
			return f.List(resultHeaders, resultRows(items), items)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by evaluation status (COMPLETED, RUNNING, FAILED)")
	return cmd
}

func newResultsDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <result-id> <result-id>",
		Short: "Compare the response bodies of two results",
		Long: `Fetches both results and prints a word-level diff of their response
bodies, with an overall similarity score. Useful for spotting how an agent's
answer drifted between two runs of the same attack.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := fetchCtx()
			defer cancel()

			outcome := client().ListResults(ctx)
			if err := outcomeError(outcome); err != nil {
				return err
			}

			a, ok := findResult(outcome.Items, args[0])
			if !ok {
				return output.ResultNotFoundError(args[0])
			}
			b, ok := findResult(outcome.Items, args[1])
			if !ok {
				return output.ResultNotFoundError(args[1])
			}

			diff := output.ComputeDiff(shortID(a.ID), a.ResponseBody, shortID(b.ID), b.ResponseBody)
			f := formatter()
			if f.IsJSON() {
				return f.JSON(diff)
			}
			diff.Render(os.Stdout)
			return nil
		},
	}
}

var resultHeaders = []string{"ID", "RUN", "AGENT", "ATTACK", "STATUS", "CREATED"}

func resultRows(results []api.Result) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			shortID(r.ID),
			shortID(r.RunID),
			r.AgentName,
			r.AttackType,
			r.EvaluationStatus,
			output.FormatTime(r.CreatedAt),
		})
	}
	return rows
}

// filterResults keeps results matching status; empty status keeps all.
func filterResults(results []api.Result, status string) []api.Result {
	if status == "" {
		return results
	}
	var out []api.Result
	for _, r := range results {
		if r.EvaluationStatus == status {
			out = append(out, r)
		}
	}
	return out
}

// findResult matches by full id or unambiguous prefix.
func findResult(results []api.Result, id string) (api.Result, bool) {
	var match api.Result
	found := 0
	for _, r := range results {
		if r.ID == id {
			return r, true
		}
		if len(id) >= 4 && len(r.ID) > len(id) && r.ID[:len(id)] == id {
			match = r
			found++
		}
	}
	return match, found == 1
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
