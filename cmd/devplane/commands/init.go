package commands

import (
	"github.com/spf13/cobra"

	"github.com/devplane/devplane/cmd/devplane/handlers"
)

// Init returns the command for interactively creating an environment
// configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "devplane.yaml")
//	--force, -f: Overwrite an existing configuration file
func Init() *cobra.Command {
	var (
		outputPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create an environment configuration",
		Long: `Interactively create an environment configuration file.

This command guides you through configuring a platform environment
step by step. It will ask about:

  - Project name (used in every derived resource name)
  - Environment tier (dev, staging, or prod)
  - Scaleway region (fr-par, nl-ams, or pl-waw)
  - Domain-based access (optional)
  - Monitoring

Everything else falls back to the environment defaults; the generated
YAML stays sparse so the defaults registry remains the single source
of truth. Run 'devplane plan' afterwards to see the resolved
configuration and its monthly cost.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, force)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "devplane.yaml", "Output file path")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")

	return cmd
}
