// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/devplane/devplane/internal/logging"
)

// Root returns the root command for the devplane CLI.
//
// The root command serves as the entry point and parent for all subcommands.
// It provides basic CLI metadata and organizes the command hierarchy.
func Root() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "devplane",
		Short: "Configure and cost Coder environments on Scaleway",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.InitVerbose(verbose)
		},
		// Runtime errors should not dump the usage text.
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Plan())
	cmd.AddCommand(Cost())
	cmd.AddCommand(Render())

	// Platform commands
	cmd.AddCommand(Bootstrap())
	cmd.AddCommand(Pricing())
	cmd.AddCommand(Secrets())
	cmd.AddCommand(Doctor())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
