// Package cli wires the hackagent commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NobPolish/hackagent/internal/config"
	"github.com/NobPolish/hackagent/internal/output"
)

var (
	cfgFile    string
	cfg        *config.Config
	outputFlag string

	// Build information, set via ldflags.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hackagent",
	Short: "HackAgent - security testing for AI agents, from your terminal",
	Long: `hackagent talks to the HackAgent platform: register agents, launch
prompt-injection and jailbreak attacks, and watch evaluation results.

Quick Start:
  hackagent config set api_key <key>   # Connect your account
  hackagent dashboard                  # Live TUI: agents, results, keys
  hackagent agents list                # One-shot listing (table/json/csv)
  hackagent guide                      # Quickstart guide in the terminal`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return output.NewCLIError("could not load configuration").
				WithCause(err.Error()).
				WithHint(output.HintConfigInvalid)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/hackagent/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: table, json, or csv")

	rootCmd.AddCommand(
		newDashboardCmd(),
		newAgentsCmd(),
		newResultsCmd(),
		newKeysCmd(),
		newAttacksCmd(),
		newConfigCmd(),
		newGuideCmd(),
		newVersionCmd(),
	)
}

// formatter builds the output formatter for the invoked command, honoring
// flag > env > config > pipe detection.
func formatter() *output.Formatter {
	return output.New(output.WithFormat(output.DetectFormat(outputFlag, cfg.OutputFormat)))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *output.CLIError
		if errors.As(err, &cliErr) {
			output.PrintCLIError(cliErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
