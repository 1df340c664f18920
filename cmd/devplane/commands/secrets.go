package commands

import (
	"github.com/spf13/cobra"

	"github.com/devplane/devplane/cmd/devplane/handlers"
)

// Secrets returns the command for generating platform credentials.
func Secrets() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "secrets",
		Short: "Generate platform credentials for the environment",
		Long: `Generate the credentials the provisioning layer injects.

Generates:
  - Database password (32 characters, no ambiguous glyphs)
  - Coder admin password and its bcrypt hash
  - Session signing key (256-bit, hex encoded)

The values are generated fresh on every run and never stored; pipe the
JSON output into your secret manager.
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Secrets(jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
