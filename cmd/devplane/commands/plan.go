package commands

import (
	"github.com/spf13/cobra"

	"github.com/devplane/devplane/cmd/devplane/handlers"
)

// Plan returns the command for showing the resolved environment plan.
func Plan() *cobra.Command {
	var (
		configPath string
		explain    bool
		jsonOutput bool
		save       bool
		builtin    bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the resolved configuration, derived names, and monthly cost",
		Long: `Resolve the environment configuration and show what it produces.

The plan covers:
  - Effective configuration (environment defaults merged with overrides)
  - Derived resource names (cluster, database, namespaces, state bucket)
  - Estimated monthly cost from the active pricing table

Use --explain to annotate each configuration field with where its value
came from (default or override). Use --save to record the estimate; saved
estimates are listed by 'devplane cost history' and the plan shows the
delta against the previous one.
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), configPath, handlers.PlanOptions{
				Explain: explain,
				JSON:    jsonOutput,
				Save:    save,
				Builtin: builtin,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: devplane.yaml)")
	cmd.Flags().BoolVar(&explain, "explain", false, "Annotate each field with its origin")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the whole plan as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "Record the estimate in the local store")
	cmd.Flags().BoolVar(&builtin, "builtin", false, "Price against the builtin table, ignoring snapshots")

	return cmd
}
