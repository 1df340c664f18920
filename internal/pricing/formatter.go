package pricing

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Formatter formats cost breakdowns for display.
type Formatter struct{}

// NewFormatter creates a new formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format returns a detailed, formatted cost breakdown for terminal display.
func (f *Formatter) Format(b *Breakdown) string {
	var sb strings.Builder

	width := 61

	// Header
	sb.WriteString(boxTop(width))
	sb.WriteString(boxLine("devplane Cost Estimate", width))
	sb.WriteString(boxLine(fmt.Sprintf("Project: %s", b.Project), width))
	sb.WriteString(boxSep(width))

	// Environment info
	sb.WriteString(boxLine(fmt.Sprintf("Environment: %s", b.Environment), width))
	nodeItem := findItem(b.Items, "Worker Nodes")
	if nodeItem != nil {
		sb.WriteString(boxLine(fmt.Sprintf("  - %d x %s worker nodes", nodeItem.Quantity, nodeItem.Unit), width))
	}
	dbItem := findItem(b.Items, "Managed Database")
	if dbItem != nil {
		if dbItem.Quantity == 2 {
			sb.WriteString(boxLine(fmt.Sprintf("  - %s database (HA pair)", dbItem.Unit), width))
		} else {
			sb.WriteString(boxLine(fmt.Sprintf("  - %s database (single node)", dbItem.Unit), width))
		}
	}

	// Region
	sb.WriteString(boxLine(fmt.Sprintf("Region: %s", b.Region), width))
	sb.WriteString(boxSep(width))

	// Line items
	sb.WriteString(boxEmpty(width))
	for _, item := range b.Items {
		line := fmt.Sprintf("%-18s %d x %-9s %9s/mo",
			item.Description, item.Quantity, item.Unit, item.Total.StringFixed(2))
		sb.WriteString(boxLine(line, width))
	}

	// Totals
	sb.WriteString(boxDash(width))
	sb.WriteString(boxLine(fmt.Sprintf("%-31s %9s/mo", "Total", b.TotalCost.StringFixed(2)), width))
	sb.WriteString(boxEmpty(width))
	sb.WriteString(boxLine(fmt.Sprintf("Annual estimate: %s", b.AnnualCost().StringFixed(2)), width))
	sb.WriteString(boxEmpty(width))

	// Unknown tier warnings
	if len(b.Warnings) > 0 {
		sb.WriteString(boxSep(width))
		for _, w := range b.Warnings {
			sb.WriteString(boxLine("! "+w, width))
		}
	}

	sb.WriteString(boxBottom(width))

	// Footer
	sb.WriteString(fmt.Sprintf("\n  Prices: %s (%s, excl. VAT)\n", b.TableVersion, b.Currency))

	// Tip
	if b.Environment == "prod" {
		sb.WriteString("\n  Tip: Use 'dev' for feature work (~85%% less)\n")
	}

	return sb.String()
}

// FormatCompact returns a single-line cost summary.
func (f *Formatter) FormatCompact(b *Breakdown) string {
	return fmt.Sprintf("%s/%s: %s/mo (%s/yr, %s)",
		b.Project, string(b.Environment), b.TotalCost.StringFixed(2), b.AnnualCost().StringFixed(2), b.Currency)
}

// JSONItem is the wire form of a LineItem, money as two-decimal strings.
type JSONItem struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

// JSONBreakdown is the wire form of a Breakdown, shared by the CLI JSON
// output and the HTTP API.
type JSONBreakdown struct {
	Project      string     `json:"project"`
	Environment  string     `json:"environment"`
	Region       string     `json:"region"`
	Items        []JSONItem `json:"items"`
	ClusterCost  string     `json:"cluster_cost"`
	DatabaseCost string     `json:"database_cost"`
	NetworkCost  string     `json:"network_cost"`
	TotalCost    string     `json:"total_cost"`
	AnnualCost   string     `json:"annual_cost"`
	Currency     string     `json:"currency"`
	TableVersion string     `json:"table_version"`
	Warnings     []string   `json:"warnings,omitempty"`
}

// NewJSONBreakdown converts a Breakdown to its wire form.
func NewJSONBreakdown(b *Breakdown) JSONBreakdown {
	jb := JSONBreakdown{
		Project:      b.Project,
		Environment:  string(b.Environment),
		Region:       string(b.Region),
		Items:        make([]JSONItem, 0, len(b.Items)),
		ClusterCost:  b.ClusterCost.StringFixed(2),
		DatabaseCost: b.DatabaseCost.StringFixed(2),
		NetworkCost:  b.NetworkCost.StringFixed(2),
		TotalCost:    b.TotalCost.StringFixed(2),
		AnnualCost:   b.AnnualCost().StringFixed(2),
		Currency:     string(b.Currency),
		TableVersion: b.TableVersion,
		Warnings:     b.Warnings,
	}
	for _, item := range b.Items {
		jb.Items = append(jb.Items, JSONItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Total:       item.Total.StringFixed(2),
		})
	}
	return jb
}

// FormatJSON returns the breakdown as JSON.
func (f *Formatter) FormatJSON(b *Breakdown) string {
	data, _ := json.MarshalIndent(NewJSONBreakdown(b), "", "  ")
	return string(data)
}

// Helper functions for box drawing

func boxTop(width int) string {
	return fmt.Sprintf("┌%s┐\n", strings.Repeat("─", width-2))
}

func boxBottom(width int) string {
	return fmt.Sprintf("└%s┘\n", strings.Repeat("─", width-2))
}

func boxSep(width int) string {
	return fmt.Sprintf("├%s┤\n", strings.Repeat("─", width-2))
}

func boxDash(width int) string {
	return fmt.Sprintf("│ %s │\n", strings.Repeat("─", width-4))
}

func boxLine(text string, width int) string {
	padding := width - 4 - len(text)
	if padding < 0 {
		padding = 0
		text = text[:width-4]
	}
	return fmt.Sprintf("│ %s%s │\n", text, strings.Repeat(" ", padding))
}

func boxEmpty(width int) string {
	return fmt.Sprintf("│%s│\n", strings.Repeat(" ", width-2))
}

func findItem(items []LineItem, description string) *LineItem {
	for i := range items {
		if items[i].Description == description {
			return &items[i]
		}
	}
	return nil
}
