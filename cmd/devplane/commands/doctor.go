package commands

import (
	"github.com/spf13/cobra"

	"github.com/devplane/devplane/cmd/devplane/handlers"
)

// Doctor returns the command for diagnosing the environment setup.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect devplane.yaml)
//	--json: Output in JSON format
func Doctor() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the environment configuration and setup",
		Long: `Diagnose the local setup for the configured environment.

Checks:
  - Configuration file present, valid, and resolvable
  - Scaleway credentials in the environment
  - Terraform state bucket exists and is versioned (needs credentials)
  - Pricing snapshot freshness

Exits non-zero when any check fails.

Examples:
  # Diagnose the environment
  devplane doctor

  # Get check results in JSON format
  devplane doctor --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: devplane.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
