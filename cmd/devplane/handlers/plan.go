// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/devplane/devplane/internal/config"
	"github.com/devplane/devplane/internal/errors"
	"github.com/devplane/devplane/internal/pricing"
	"github.com/devplane/devplane/internal/store"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// findConfigFile locates the config file when no path is given.
	findConfigFile = config.FindConfigFile

	// loadConfigFile loads and validates a config file.
	loadConfigFile = config.Load

	// openStore opens the local devplane database.
	openStore = func() (*gorm.DB, error) {
		url, err := store.DefaultDatabaseURL()
		if err != nil {
			return nil, err
		}
		db, err := store.OpenFromURL(url)
		if err != nil {
			return nil, err
		}
		if err := store.AutoMigrate(db); err != nil {
			return nil, err
		}
		return db, nil
	}
)

// loadConfig loads the configuration, auto-detecting the file when no path
// is given.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			return nil, err
		}
		configPath = path
	}
	return loadConfigFile(configPath)
}

// PlanOptions controls plan output and side effects.
type PlanOptions struct {
	// Explain annotates each configuration field with its origin.
	Explain bool

	// JSON emits the whole plan as one JSON document.
	JSON bool

	// Save records the estimate in the local store.
	Save bool

	// Builtin prices against the builtin table, ignoring snapshots.
	Builtin bool
}

// planDocument is the JSON form of a complete plan.
type planDocument struct {
	EffectiveConfig *config.EffectiveConfig `json:"effective_config"`
	Names           config.DerivedNames     `json:"names"`
	Cost            pricing.JSONBreakdown   `json:"cost"`
}

// Plan resolves the environment and shows the effective configuration, the
// derived resource names, and the estimated monthly cost.
func Plan(ctx context.Context, configPath string, opts PlanOptions) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	effective, err := config.Resolve(cfg)
	if err != nil {
		return err
	}
	names := effective.DerivedNames()

	table, source := activeTable(ctx, opts.Builtin)
	breakdown := pricing.NewEstimatorWithTable(table).Estimate(effective)

	if opts.JSON {
		doc := planDocument{
			EffectiveConfig: effective,
			Names:           names,
			Cost:            pricing.NewJSONBreakdown(breakdown),
		}
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(b))
	} else {
		fmt.Print(renderPlanReport(effective, names, breakdown, source, opts.Explain))
	}

	if opts.Save {
		return saveEstimate(ctx, breakdown)
	}
	return nil
}

// saveEstimate records the estimate and prints the delta against the
// previously saved one for the same project and environment.
func saveEstimate(ctx context.Context, b *pricing.Breakdown) error {
	db, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	repo := store.NewEstimateRepository(db)

	previous, err := repo.Latest(ctx, b.Project, string(b.Environment))
	if err != nil && !errors.IsType(err, errors.TypeNotFound) {
		return err
	}

	est, err := repo.Save(ctx, b)
	if err != nil {
		return err
	}

	fmt.Printf("\nSaved estimate %s (%s %s/mo)\n", est.ID, b.TotalCost.StringFixed(2), b.Currency)
	if previous != nil {
		delta := b.TotalCost.Sub(previous.TotalCost)
		fmt.Printf("  vs previous (%s): %s\n", previous.CreatedAt.Format("2006-01-02"), renderDelta(delta))
	}
	return nil
}
