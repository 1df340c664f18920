package handlers

import (
	"context"
	"fmt"

	"github.com/devplane/devplane/internal/config"
	"github.com/devplane/devplane/internal/pricing"
	"github.com/devplane/devplane/internal/store"
)

// Cost estimates the monthly cost of the configured environment.
func Cost(ctx context.Context, configPath string, jsonOutput, compact, builtin bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	effective, err := config.Resolve(cfg)
	if err != nil {
		return err
	}

	table, _ := activeTable(ctx, builtin)
	breakdown := pricing.NewEstimatorWithTable(table).Estimate(effective)

	formatter := pricing.NewFormatter()
	switch {
	case jsonOutput:
		fmt.Println(formatter.FormatJSON(breakdown))
	case compact:
		fmt.Println(formatter.FormatCompact(breakdown))
	default:
		fmt.Print(formatter.Format(breakdown))
	}

	return nil
}

// CostHistory lists the saved estimates for the configured environment,
// newest first.
func CostHistory(ctx context.Context, configPath string, limit int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	estimates, err := store.NewEstimateRepository(db).List(ctx, cfg.Project, string(cfg.Environment), limit)
	if err != nil {
		return err
	}
	if len(estimates) == 0 {
		fmt.Printf("No saved estimates for %s/%s. Run 'devplane plan --save' to record one.\n", cfg.Project, string(cfg.Environment))
		return nil
	}

	fmt.Printf("Saved estimates for %s/%s:\n\n", cfg.Project, string(cfg.Environment))
	fmt.Printf("  %-19s %-12s %10s  %s\n", "Date", "Table", "Total/mo", "Delta")
	previousTotal := estimates[len(estimates)-1].TotalCost
	// Walk oldest to newest so each delta compares against its predecessor.
	for i := len(estimates) - 1; i >= 0; i-- {
		e := estimates[i]
		delta := e.TotalCost.Sub(previousTotal)
		fmt.Printf("  %-19s %-12s %10s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.TableVersion,
			e.TotalCost.StringFixed(2),
			renderDelta(delta),
		)
		previousTotal = e.TotalCost
	}

	return nil
}
