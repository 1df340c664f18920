package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devplane/devplane/internal/config"
	"github.com/devplane/devplane/internal/render"
)

// Factory function variables for render - can be replaced in tests.
var (
	// writeFile writes rendered output to disk.
	writeFile = os.WriteFile
)

// Render resolves the environment and writes the Terraform inputs: the
// tfvars file, plus its JSON equivalent when requested.
func Render(ctx context.Context, configPath, outputDir string, alsoJSON bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	effective, err := config.Resolve(cfg)
	if err != nil {
		return err
	}

	tfvarsPath := filepath.Join(outputDir, render.TFVarsFilename(effective.Environment))
	if err := writeFile(tfvarsPath, render.TFVars(effective), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tfvarsPath, err)
	}
	fmt.Printf("Wrote %s\n", tfvarsPath)

	if alsoJSON {
		data, err := render.TFVarsJSON(effective)
		if err != nil {
			return fmt.Errorf("failed to render tfvars.json: %w", err)
		}
		jsonPath := filepath.Join(outputDir, render.TFVarsJSONFilename(effective.Environment))
		if err := writeFile(jsonPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", jsonPath, err)
		}
		fmt.Printf("Wrote %s\n", jsonPath)
	}

	fmt.Println()
	fmt.Printf("Apply with: terraform plan -var-file=%s\n", render.TFVarsFilename(effective.Environment))

	return nil
}
