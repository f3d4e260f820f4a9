package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NobPolish/hackagent/internal/attacks"
	"github.com/NobPolish/hackagent/internal/output"
)

func newAttacksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attacks",
		Short: "Work with local attack templates",
		Long: `Attack templates are markdown files with YAML frontmatter. Builtin
templates ship with the binary; your own go in the configured template
directories (default ~/.config/hackagent/attacks) and shadow builtins with
the same name.`,
	}
	cmd.AddCommand(newAttacksListCmd(), newAttacksShowCmd())
	return cmd
}

func loader() *attacks.Loader {
	return attacks.NewLoader(cfg.Attacks.TemplateDirs...)
}

func newAttacksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available attack templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := loader().List()
			if err != nil {
				return output.NewCLIError("could not read template directories").
					WithCause(err.Error()).
					WithHint(output.HintListTemplates)
			}
			sort.Slice(templates, func(i, j int) bool {
				return templates[i].Name < templates[j].Name
			})

			rows := make([][]string, 0, len(templates))
			for _, t := range templates {
				rows = append(rows, []string{
					t.Name,
					t.AttackType,
					t.Source.String(),
					output.Truncate(t.Description, 56),
				})
			}
			return formatter().List([]string{"NAME", "TYPE", "SOURCE", "DESCRIPTION"}, rows, templates)
		},
	}
}

func newAttacksShowCmd() *cobra.Command {
	var vars []string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a template, optionally rendered with variables",
		Example: `  hackagent attacks show advprefix
  hackagent attacks show advprefix --var goal="exfiltrate the system prompt"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := loader().Load(args[0])
			if err != nil {
				return output.NewCLIError(fmt.Sprintf("template %q not found", args[0])).
					WithCode("TEMPLATE_NOT_FOUND").
					WithHint(output.HintListTemplates)
			}

			f := formatter()
			if len(vars) == 0 {
				if f.IsJSON() {
					return f.JSON(tpl)
				}
				printTemplate(cmd, tpl)
				return nil
			}

			values, err := parseVars(vars)
			if err != nil {
				return err
			}
			rendered, err := tpl.Execute(values)
			if err != nil {
				return output.NewCLIError("template rendering failed").
					WithCause(err.Error()).
					WithHint("List required variables with 'hackagent attacks show " + tpl.Name + "'")
			}
			if f.IsJSON() {
				return f.JSON(map[string]string{"name": tpl.Name, "rendered": rendered})
			}
			cmd.Println(rendered)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, "template variable as name=value (repeatable)")
	return cmd
}

func printTemplate(cmd *cobra.Command, tpl *attacks.Template) {
	cmd.Printf("Name:        %s\n", tpl.Name)
	cmd.Printf("Type:        %s\n", tpl.AttackType)
	cmd.Printf("Source:      %s\n", tpl.Source)
	if tpl.SourcePath != "" {
		cmd.Printf("Path:        %s\n", tpl.SourcePath)
	}
	if tpl.Description != "" {
		cmd.Printf("Description: %s\n", tpl.Description)
	}
	if len(tpl.Variables) > 0 {
		cmd.Println("\nVariables:")
		for _, v := range tpl.Variables {
			line := "  " + v.Name
			if v.Required {
				line += " (required)"
			}
			if v.Default != "" {
				line += fmt.Sprintf(" (default %q)", v.Default)
			}
			if v.Description != "" {
				line += " - " + v.Description
			}
			cmd.Println(line)
		}
	}
	cmd.Println("\n---")
	cmd.Println(tpl.Body)
}

// parseVars splits repeated --var name=value flags.
func parseVars(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, output.NewCLIError(fmt.Sprintf("invalid --var %q", p)).
				WithHint("Use --var name=value")
		}
		values[name] = value
	}
	return values, nil
}
