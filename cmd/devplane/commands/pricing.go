package commands

import (
	"github.com/spf13/cobra"

	"github.com/devplane/devplane/cmd/devplane/handlers"
)

// Pricing returns the command group for pricing table management.
func Pricing() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Show and update the pricing table",
		Long: `Manage the pricing table the cost estimator runs against.

Estimates use the most recent stored snapshot when one exists, otherwise
the builtin table compiled into the binary. 'pricing update' fetches the
live Scaleway catalog and stores a new snapshot.
`,
	}

	cmd.AddCommand(pricingShow())
	cmd.AddCommand(pricingUpdate())
	cmd.AddCommand(pricingHistory())

	return cmd
}

// pricingShow returns the subcommand rendering the active table.
func pricingShow() *cobra.Command {
	var (
		jsonOutput bool
		builtin    bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active pricing table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.PricingShow(cmd.Context(), jsonOutput, builtin)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&builtin, "builtin", false, "Show the builtin table, ignoring snapshots")

	return cmd
}

// pricingUpdate returns the subcommand fetching and storing live prices.
func pricingUpdate() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Fetch live prices and store a snapshot",
		Long: `Fetch the current Scaleway catalog prices and store them as a snapshot.

The public catalog needs no credentials; SCW_SECRET_KEY is sent when set.
The new snapshot becomes the active table for plan and cost.
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.PricingUpdate(cmd.Context())
		},
	}
}

// pricingHistory returns the subcommand listing stored snapshots.
func pricingHistory() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List stored pricing snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.PricingHistory(cmd.Context())
		},
	}
}
