package commands

import (
	"github.com/spf13/cobra"

	"github.com/devplane/devplane/cmd/devplane/handlers"
)

// Render returns the command for writing Terraform variable files.
func Render() *cobra.Command {
	var (
		configPath string
		outputDir  string
		alsoJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the tfvars file for the environment",
		Long: `Render the resolved configuration into a Terraform variable file.

Writes {environment}.tfvars with the effective configuration and the
derived resource names, exactly the variables the downstream Terraform
modules consume. Attribute order is fixed, so re-rendering an unchanged
configuration produces a byte-identical file.

Use --json to additionally write {environment}.tfvars.json for tooling
that prefers JSON input.
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Render(cmd.Context(), configPath, outputDir, alsoJSON)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: devplane.yaml)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory to write the tfvars files into")
	cmd.Flags().BoolVar(&alsoJSON, "json", false, "Also write the tfvars.json variant")

	return cmd
}
