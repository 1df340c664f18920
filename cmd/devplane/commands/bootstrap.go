package commands

import (
	"github.com/spf13/cobra"

	"github.com/devplane/devplane/cmd/devplane/handlers"
)

// Bootstrap returns the command for creating the Terraform state bucket.
func Bootstrap() *cobra.Command {
	var (
		configPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the Terraform state bucket for the environment",
		Long: `Create the Object Storage bucket that holds the Terraform state.

Terraform's S3 backend needs the bucket to exist before 'terraform init'
can run, so this command creates it out of band. The operation is
idempotent: a bucket this account already owns counts as success. A
bucket owned by a different account is a name collision and fails.

Bucket versioning is enabled after creation so state history survives
overwrites.

Requires SCW_ACCESS_KEY and SCW_SECRET_KEY in the environment.
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Bootstrap(cmd.Context(), configPath, dryRun)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: devplane.yaml)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print what would be created without calling the API")

	return cmd
}
