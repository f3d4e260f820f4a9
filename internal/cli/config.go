package cli

import (
	"github.com/spf13/cobra"

	"github.com/NobPolish/hackagent/internal/config"
	"github.com/NobPolish/hackagent/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage hackagent configuration",
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigSetCmd(), newConfigPathCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := formatter()
			if f.IsJSON() {
				return f.JSON(map[string]interface{}{
					"config_file":     configPath(),
					"base_url":        cfg.BaseURL,
					"api_key":         cfg.RedactedKey(),
					"output_format":   cfg.OutputFormat,
					"timeout_seconds": cfg.TimeoutSeconds,
					"refresh":         cfg.Refresh,
					"template_dirs":   cfg.Attacks.TemplateDirs,
				})
			}

			cmd.Printf("Config file:   %s\n", configPath())
			cmd.Printf("Base URL:      %s\n", cfg.BaseURL)
			cmd.Printf("API key:       %s\n", cfg.RedactedKey())
			cmd.Printf("Output format: %s\n", cfg.OutputFormat)
			cmd.Printf("Timeout:       %ds\n", cfg.TimeoutSeconds)
			cmd.Printf("Auto-refresh:  %t (overview %s, agents %s, results %s, keys %s)\n",
				cfg.Refresh.Enabled,
				cfg.OverviewInterval(), cfg.AgentsInterval(),
				cfg.ResultsInterval(), cfg.KeysInterval())
			if cfg.APIKey == "" {
				cmd.Println()
				output.SuccessFooter(output.Suggestion{
					Command:     "hackagent config set api_key <key>",
					Description: "Connect your HackAgent account",
				})
			}
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value and save it",
		Long: `Settable keys: api_key, base_url, output_format (table|json|csv),
timeout_seconds.`,
		Example: `  hackagent config set api_key hak_live_...
  hackagent config set output_format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Set(args[0], args[1]); err != nil {
				return output.NewCLIError(err.Error()).WithHint(output.HintConfigInvalid)
			}
			if err := cfg.Save(cfgFile); err != nil {
				return output.NewCLIError("could not save configuration").
					WithCause(err.Error())
			}

			f := formatter()
			if f.IsJSON() {
				return f.JSON(output.NewSuccess(args[0] + " updated"))
			}
			cmd.Printf("%s updated in %s\n", args[0], configPath())
			if args[0] == "api_key" {
				output.SuccessFooter(
					output.Suggestion{Command: "hackagent dashboard", Description: "Watch your agents live"},
					output.Suggestion{Command: "hackagent agents list", Description: "Verify the connection"},
				)
			}
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(configPath())
			return nil
		},
	}
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultPath()
}
