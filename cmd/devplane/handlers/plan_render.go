package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/devplane/devplane/internal/config"
	"github.com/devplane/devplane/internal/pricing"
)

// Colors matching the pricing formatter palette.
var (
	planColorGreen = lipgloss.Color("#22c55e")
	planColorRed   = lipgloss.Color("#ef4444")
	planColorBlue  = lipgloss.Color("#3b82f6")
	planColorDim   = lipgloss.Color("#6b7280")
	planColorWhite = lipgloss.Color("#f9fafb")
)

var (
	planTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(planColorWhite)

	planSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(planColorBlue)

	planDimStyle = lipgloss.NewStyle().
			Foreground(planColorDim)

	planGreenStyle = lipgloss.NewStyle().
			Foreground(planColorGreen)

	planRedStyle = lipgloss.NewStyle().
			Foreground(planColorRed)
)

// planField is one resolved configuration value with its origin.
type planField struct {
	name   string
	value  any
	origin config.Origin
}

// configFields returns the resolved fields in display order, matching the
// order of the defaults table.
func configFields(cfg *config.EffectiveConfig) []planField {
	origin := func(name string) config.Origin {
		if o, ok := cfg.Origins[name]; ok {
			return o
		}
		return config.OriginDefault
	}
	return []planField{
		{"node_count", cfg.NodeCount, origin("node_count")},
		{"node_type", cfg.NodeType, origin("node_type")},
		{"min_size", cfg.MinSize, origin("min_size")},
		{"max_size", cfg.MaxSize, origin("max_size")},
		{"database_node_type", cfg.DatabaseNodeType, origin("database_node_type")},
		{"database_is_ha", cfg.DatabaseIsHA, origin("database_is_ha")},
		{"database_backup_retention_days", cfg.DatabaseBackupRetentionDays, origin("database_backup_retention_days")},
		{"enable_monitoring", cfg.EnableMonitoring, origin("enable_monitoring")},
		{"enable_pod_security", cfg.EnablePodSecurity, origin("enable_pod_security")},
		{"enable_network_policy", cfg.EnableNetworkPolicy, origin("enable_network_policy")},
	}
}

// renderPlanReport produces the lipgloss-styled plan output: environment,
// resolved configuration, derived names and the monthly cost table.
func renderPlanReport(cfg *config.EffectiveConfig, names config.DerivedNames, b *pricing.Breakdown, priceSource string, explain bool) string {
	var out strings.Builder

	out.WriteString("\n")
	out.WriteString(planTitleStyle.Render(fmt.Sprintf("  devplane plan: %s/%s", cfg.Project, string(cfg.Environment))))
	out.WriteString("\n")
	out.WriteString(planDimStyle.Render("  " + strings.Repeat("═", 30)))
	out.WriteString("\n\n")

	// Environment block
	out.WriteString(planSectionStyle.Render("  Environment"))
	out.WriteString("\n")
	out.WriteString(planDimStyle.Render("  " + strings.Repeat("─", 35)))
	out.WriteString("\n")
	fmt.Fprintf(&out, "    %-19s %s\n", "environment:", cfg.Environment.String())
	fmt.Fprintf(&out, "    %-19s %s\n", "region:", cfg.Region.String())
	if cfg.Domain != "" {
		fmt.Fprintf(&out, "    %-19s %s.%s\n", "workspace host:", cfg.Subdomain, cfg.Domain)
	} else {
		fmt.Fprintf(&out, "    %-19s %s\n", "workspace access:", "IP-based (no domain)")
	}
	fmt.Fprintf(&out, "    %-19s %s\n", "defaults version:", cfg.DefaultsVersion)
	out.WriteString("\n")

	// Configuration block
	out.WriteString(planSectionStyle.Render("  Configuration"))
	out.WriteString("\n")
	out.WriteString(planDimStyle.Render("  " + strings.Repeat("─", 35)))
	out.WriteString("\n")
	for _, f := range configFields(cfg) {
		line := fmt.Sprintf("    %-31s %v", f.name+":", f.value)
		if explain {
			line = fmt.Sprintf("%-42s %s", line, planDimStyle.Render("("+string(f.origin)+")"))
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	fmt.Fprintf(&out, "    %-31s %v\n", "load_balancer_enabled:", cfg.LoadBalancerEnabled)
	out.WriteString("\n")

	// Derived names block
	out.WriteString(planSectionStyle.Render("  Derived Names"))
	out.WriteString("\n")
	out.WriteString(planDimStyle.Render("  " + strings.Repeat("─", 35)))
	out.WriteString("\n")
	fmt.Fprintf(&out, "    %-19s %s\n", "cluster:", names.ClusterName)
	fmt.Fprintf(&out, "    %-19s %s\n", "database:", names.DatabaseName)
	fmt.Fprintf(&out, "    %-19s %s\n", "database user:", names.DatabaseUser)
	fmt.Fprintf(&out, "    %-19s %s\n", "namespace:", names.Namespace)
	if names.MonitoringNamespace != "" {
		fmt.Fprintf(&out, "    %-19s %s\n", "monitoring:", names.MonitoringNamespace)
	}
	fmt.Fprintf(&out, "    %-19s %s\n", "state bucket:", names.StateBucketName)
	out.WriteString("\n")

	renderPlanCostSection(&out, b)

	out.WriteString("\n")
	out.WriteString(planDimStyle.Render(fmt.Sprintf("  Prices: %s (%s), %s excl. VAT", b.TableVersion, priceSource, b.Currency)))
	out.WriteString("\n")

	return out.String()
}

// renderPlanCostSection renders the monthly cost table with totals.
func renderPlanCostSection(out *strings.Builder, b *pricing.Breakdown) {
	out.WriteString(planSectionStyle.Render("  Monthly Cost"))
	out.WriteString("\n")
	out.WriteString(planDimStyle.Render("  " + strings.Repeat("─", 55)))
	out.WriteString("\n")

	// Header
	out.WriteString(planDimStyle.Render(fmt.Sprintf("  %-18s %4s %-10s %11s %10s", "Item", "Qty", "Unit", "Unit Price", "Total/mo")))
	out.WriteString("\n")

	for _, item := range b.Items {
		fmt.Fprintf(out, "  %-18s x%-3d %-10s %11s %10s\n",
			item.Description,
			item.Quantity,
			item.Unit,
			item.UnitPrice.StringFixed(2),
			item.Total.StringFixed(2),
		)
	}

	out.WriteString(planDimStyle.Render("  " + strings.Repeat("─", 55)))
	out.WriteString("\n")
	fmt.Fprintf(out, "  %-18s %27s %10s\n", "Total", "", b.TotalCost.StringFixed(2))
	fmt.Fprintf(out, "  %-18s %27s %10s\n", "Annual", "", b.AnnualCost().StringFixed(2))

	for _, w := range b.Warnings {
		out.WriteString(planRedStyle.Render("  ! " + w))
		out.WriteString("\n")
	}
}

// renderDelta returns a styled cost delta string with arrow indicator.
func renderDelta(delta decimal.Decimal) string {
	switch {
	case delta.IsPositive():
		return planRedStyle.Render(fmt.Sprintf("+%s  ▲", delta.StringFixed(2)))
	case delta.IsNegative():
		return planGreenStyle.Render(fmt.Sprintf("%s  ▼", delta.StringFixed(2)))
	default:
		return planDimStyle.Render("0.00  ─")
	}
}
