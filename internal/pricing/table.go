// Package pricing provides monthly cost estimation for devplane environments.
package pricing

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code.
type Currency string

// CurrencyEUR is the billing currency for all Scaleway price tables.
const CurrencyEUR Currency = "EUR"

// DefaultTableVersion identifies the built-in price table snapshot.
const DefaultTableVersion = "2025-07"

// Table contains monthly prices for the resources an environment provisions.
// All prices are net amounts in the table's currency, before VAT.
type Table struct {
	// Version identifies the snapshot this table was taken from.
	Version string `json:"version"`

	// Currency applies to every price in the table.
	Currency Currency `json:"currency"`

	// Compute maps instance type to monthly price.
	Compute map[string]decimal.Decimal `json:"compute"`

	// Database maps managed database node type to monthly price per node.
	Database map[string]decimal.Decimal `json:"database"`

	// Network holds the flat-rate network prices.
	Network NetworkPrices `json:"network"`
}

// NetworkPrices contains the flat monthly prices for network resources.
type NetworkPrices struct {
	// LoadBalancer is the monthly price for a managed load balancer.
	LoadBalancer decimal.Decimal `json:"load_balancer"`

	// PublicGateway is the monthly price for the public gateway that
	// carries egress when no load balancer is provisioned.
	PublicGateway decimal.Decimal `json:"public_gateway"`
}

// ComputePrice returns the monthly price for an instance type.
func (t *Table) ComputePrice(tier string) (decimal.Decimal, bool) {
	p, ok := t.Compute[tier]
	return p, ok
}

// DatabasePrice returns the monthly price per node for a database node type.
func (t *Table) DatabasePrice(tier string) (decimal.Decimal, bool) {
	p, ok := t.Database[tier]
	return p, ok
}

// ComputeTiers returns the known instance types in sorted order.
func (t *Table) ComputeTiers() []string {
	tiers := make([]string, 0, len(t.Compute))
	for tier := range t.Compute {
		tiers = append(tiers, tier)
	}
	sort.Strings(tiers)
	return tiers
}

// DatabaseTiers returns the known database node types in sorted order.
func (t *Table) DatabaseTiers() []string {
	tiers := make([]string, 0, len(t.Database))
	for tier := range t.Database {
		tiers = append(tiers, tier)
	}
	sort.Strings(tiers)
	return tiers
}

// Validate checks that the table is usable for estimation.
func (t *Table) Validate() error {
	if t.Version == "" {
		return fmt.Errorf("price table has no version")
	}
	if t.Currency == "" {
		return fmt.Errorf("price table has no currency")
	}
	if len(t.Compute) == 0 {
		return fmt.Errorf("price table has no compute prices")
	}
	if len(t.Database) == 0 {
		return fmt.Errorf("price table has no database prices")
	}
	for tier, p := range t.Compute {
		if p.IsNegative() {
			return fmt.Errorf("negative price for compute tier %q", tier)
		}
	}
	for tier, p := range t.Database {
		if p.IsNegative() {
			return fmt.Errorf("negative price for database tier %q", tier)
		}
	}
	if t.Network.LoadBalancer.IsNegative() || t.Network.PublicGateway.IsNegative() {
		return fmt.Errorf("negative network price")
	}
	return nil
}

// ParseTable decodes a JSON price table and validates it.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse price table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// eur builds a decimal price from its exact string form.
func eur(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultTable returns the built-in Scaleway price table (as of July 2025).
// These are net monthly prices in EUR derived from hourly list prices at
// 730 hours per month.
//
// TODO: Refresh from the Scaleway catalog API on release to avoid drift.
func DefaultTable() *Table {
	return &Table{
		Version:  DefaultTableVersion,
		Currency: CurrencyEUR,
		Compute: map[string]decimal.Decimal{
			// DEV1 series - shared vCPU, no SLA
			"DEV1-M": eur("11.68"),
			"DEV1-L": eur("23.36"),
			// GP1 series - dedicated vCPU
			"GP1-XS": eur("66.43"),
			"GP1-S":  eur("132.86"),
			"GP1-M":  eur("265.72"),
			"GP1-L":  eur("531.44"),
		},
		Database: map[string]decimal.Decimal{
			// DB-DEV series - shared vCPU, single AZ
			"DB-DEV-S": eur("11.23"),
			"DB-DEV-M": eur("22.47"),
			"DB-DEV-L": eur("44.94"),
			// DB-GP series - dedicated vCPU, HA capable
			"DB-GP-XS": eur("80.30"),
			"DB-GP-S":  eur("160.60"),
			"DB-GP-M":  eur("321.20"),
		},
		Network: NetworkPrices{
			LoadBalancer:  eur("8.90"),
			PublicGateway: eur("2.99"),
		},
	}
}
