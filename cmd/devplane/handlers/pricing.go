package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/devplane/devplane/internal/logging"
	"github.com/devplane/devplane/internal/pricing"
	"github.com/devplane/devplane/internal/store"
)

// Factory function variables for pricing - can be replaced in tests.
var (
	// fetchLiveTable fetches the current price table from the catalog API.
	fetchLiveTable = func(ctx context.Context, token string) (*pricing.Table, error) {
		return pricing.NewClient(token).FetchTable(ctx)
	}
)

// activeTable returns the price table estimates run against: the most
// recent stored snapshot, or the builtin table when none exists or builtin
// is forced. The source string names where the table came from.
func activeTable(ctx context.Context, builtin bool) (*pricing.Table, string) {
	if builtin {
		return pricing.DefaultTable(), "builtin"
	}

	db, err := openStore()
	if err != nil {
		logging.Sugar.Debugw("store unavailable, using builtin price table", "error", err)
		return pricing.DefaultTable(), "builtin"
	}
	snap, err := store.NewSnapshotRepository(db).Latest(ctx)
	if err != nil {
		return pricing.DefaultTable(), "builtin"
	}
	return snap.Table, "snapshot from " + snap.CreatedAt.Format("2006-01-02")
}

// PricingShow displays the active price table.
func PricingShow(ctx context.Context, jsonOutput, builtin bool) error {
	table, source := activeTable(ctx, builtin)

	if jsonOutput {
		data, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(renderPriceTable(table, source))
	return nil
}

// renderPriceTable produces the styled price table listing.
func renderPriceTable(t *pricing.Table, source string) string {
	var out strings.Builder

	out.WriteString("\n")
	out.WriteString(planTitleStyle.Render(fmt.Sprintf("  Price table %s", t.Version)))
	out.WriteString("\n")
	out.WriteString(planDimStyle.Render("  " + strings.Repeat("═", 30)))
	out.WriteString("\n\n")

	out.WriteString(planSectionStyle.Render("  Compute"))
	out.WriteString("\n")
	out.WriteString(planDimStyle.Render("  " + strings.Repeat("─", 35)))
	out.WriteString("\n")
	for _, tier := range t.ComputeTiers() {
		price, _ := t.ComputePrice(tier)
		fmt.Fprintf(&out, "    %-12s %10s /mo\n", tier, price.StringFixed(2))
	}
	out.WriteString("\n")

	out.WriteString(planSectionStyle.Render("  Database (per node)"))
	out.WriteString("\n")
	out.WriteString(planDimStyle.Render("  " + strings.Repeat("─", 35)))
	out.WriteString("\n")
	for _, tier := range t.DatabaseTiers() {
		price, _ := t.DatabasePrice(tier)
		fmt.Fprintf(&out, "    %-12s %10s /mo\n", tier, price.StringFixed(2))
	}
	out.WriteString("\n")

	out.WriteString(planSectionStyle.Render("  Network"))
	out.WriteString("\n")
	out.WriteString(planDimStyle.Render("  " + strings.Repeat("─", 35)))
	out.WriteString("\n")
	fmt.Fprintf(&out, "    %-12s %10s /mo\n", "LB-S", t.Network.LoadBalancer.StringFixed(2))
	fmt.Fprintf(&out, "    %-12s %10s /mo\n", "VPC-GW-S", t.Network.PublicGateway.StringFixed(2))
	out.WriteString("\n")

	out.WriteString(planDimStyle.Render(fmt.Sprintf("  Source: %s, %s excl. VAT", source, t.Currency)))
	out.WriteString("\n")

	return out.String()
}

// PricingUpdate fetches the live price table and stores it as a snapshot.
// Estimates use the newest snapshot from then on.
func PricingUpdate(ctx context.Context) error {
	// The public catalog needs no credentials; the secret key is only
	// forwarded when present.
	token := lookupEnv("SCW_SECRET_KEY")

	table, err := fetchLiveTable(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to fetch price table: %w", err)
	}

	db, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	snap, err := store.NewSnapshotRepository(db).Save(ctx, table, store.SourceLive)
	if err != nil {
		return err
	}

	fmt.Printf("Saved price table %s (%d compute tiers, %d database tiers)\n",
		snap.Version, len(table.Compute), len(table.Database))
	return nil
}

// PricingHistory lists the stored price table snapshots, newest first.
func PricingHistory(ctx context.Context) error {
	db, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	snapshots, err := store.NewSnapshotRepository(db).List(ctx)
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		fmt.Println("No stored price tables. Run 'devplane pricing update' to fetch one.")
		return nil
	}

	fmt.Printf("  %-19s %-16s %-8s %s\n", "Date", "Version", "Source", "Tiers")
	for _, s := range snapshots {
		fmt.Printf("  %-19s %-16s %-8s %d compute, %d database\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.Version,
			s.Source,
			len(s.Table.Compute),
			len(s.Table.Database),
		)
	}
	return nil
}
