package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/devplane/devplane/internal/config"
	"github.com/devplane/devplane/internal/pricing"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive setup wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.Save
)

// Init runs the environment setup wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string, force bool) error {
	if fileExists(outputPath) && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	cfg := result.ToConfig()

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	// The wizard validates every answer, so resolution only fails when a
	// default table entry is broken.
	effective, err := config.Resolve(cfg)
	if err != nil {
		return fmt.Errorf("generated config does not resolve: %w", err)
	}
	breakdown := pricing.NewEstimator().Estimate(effective)

	printInitSuccess(outputPath, effective, breakdown)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("devplane - Coder on Scaleway")
	fmt.Println("============================")
	fmt.Println()
	fmt.Println("This wizard creates an environment configuration with sensible defaults.")
	fmt.Println("Just answer 5 simple questions.")
	fmt.Println("The generated YAML stays sparse: only your deviations from the defaults are written.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.EffectiveConfig, b *pricing.Breakdown) {
	names := cfg.DerivedNames()

	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Environment Summary")
	fmt.Println("-------------------")
	fmt.Printf("  Project:     %s\n", cfg.Project)
	fmt.Printf("  Environment: %s\n", cfg.Environment.String())
	fmt.Printf("  Region:      %s\n", cfg.Region.String())
	fmt.Printf("  Cluster:     %d x %s (autoscaling %d-%d)\n", cfg.NodeCount, cfg.NodeType, cfg.MinSize, cfg.MaxSize)
	fmt.Printf("  Database:    %s", cfg.DatabaseNodeType)
	if cfg.DatabaseIsHA {
		fmt.Print(" (HA)")
	}
	fmt.Println()
	if cfg.Domain != "" {
		fmt.Printf("  Workspaces:  https://%s.%s\n", cfg.Subdomain, cfg.Domain)
	}
	fmt.Printf("  State:       s3://%s\n", names.StateBucketName)
	fmt.Println()
	fmt.Printf("  Estimated cost: %s %s/mo (%s/yr)\n", b.Currency, b.TotalCost.StringFixed(2), b.AnnualCost().StringFixed(2))
	fmt.Println()

	// Next steps
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Set your Scaleway API credentials:")
	fmt.Println("     export SCW_ACCESS_KEY=<your-access-key>")
	fmt.Println("     export SCW_SECRET_KEY=<your-secret-key>")
	fmt.Println()
	fmt.Printf("  2. Review the plan:\n")
	fmt.Printf("     devplane plan --explain\n")
	fmt.Println()
	fmt.Println("  3. Create the state bucket and render the Terraform inputs:")
	fmt.Printf("     devplane bootstrap && devplane render\n")
	fmt.Println()
}
