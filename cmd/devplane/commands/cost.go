package commands

import (
	"github.com/spf13/cobra"

	"github.com/devplane/devplane/cmd/devplane/handlers"
)

// Cost returns the command for environment cost estimation.
func Cost() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
		compact    bool
		builtin    bool
	)

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Estimate the monthly cost of the environment",
		Long: `Estimate monthly costs for the configured environment.

The estimate covers worker nodes, the managed database (doubled when it
runs in high availability), and the network baseline (load balancer, or
public gateway when the load balancer is disabled). Tiers missing from
the pricing table are priced at zero and reported as warnings.

Prices come from the most recent stored snapshot when one exists
(see 'devplane pricing update'), otherwise from the builtin table.
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Cost(cmd.Context(), configPath, jsonOutput, compact, builtin)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: devplane.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&compact, "compact", false, "Output a one-line summary")
	cmd.Flags().BoolVar(&builtin, "builtin", false, "Price against the builtin table, ignoring snapshots")

	cmd.AddCommand(costHistory())

	return cmd
}

// costHistory returns the subcommand listing saved estimates.
func costHistory() *cobra.Command {
	var (
		configPath string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved cost estimates for the environment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.CostHistory(cmd.Context(), configPath, limit)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: devplane.yaml)")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of estimates to list")

	return cmd
}
