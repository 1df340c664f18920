package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/devplane/devplane/internal/config"
)

// Estimator computes monthly cost breakdowns from a price table.
type Estimator struct {
	table *Table
}

// Breakdown contains the estimated monthly cost for an environment.
type Breakdown struct {
	// Items is the list of line items.
	Items []LineItem

	// ClusterCost is the monthly cost of the worker nodes.
	ClusterCost decimal.Decimal

	// DatabaseCost is the monthly cost of the managed database,
	// doubled when the database runs in high availability.
	DatabaseCost decimal.Decimal

	// NetworkCost is the load balancer cost, or the public gateway
	// baseline when no load balancer is provisioned.
	NetworkCost decimal.Decimal

	// TotalCost is the sum of all categories.
	TotalCost decimal.Decimal

	// Warnings lists tiers the price table did not cover. Each unknown
	// tier contributes zero cost instead of failing the estimate.
	Warnings []string

	// Pricing metadata
	Currency     Currency
	TableVersion string

	// Config metadata
	Project     string
	Environment config.Environment
	Region      config.Region
}

// LineItem represents a single cost line item.
type LineItem struct {
	Description string
	Quantity    int
	Unit        string
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// String returns a formatted string representation of the line item.
func (l LineItem) String() string {
	return fmt.Sprintf("%s: %d× %s @ €%s = €%s/mo",
		l.Description, l.Quantity, l.Unit, l.UnitPrice.StringFixed(2), l.Total.StringFixed(2))
}

// AnnualCost returns the estimated annual cost.
func (b *Breakdown) AnnualCost() decimal.Decimal {
	return b.TotalCost.Mul(decimal.NewFromInt(12))
}

// NewEstimator creates an estimator backed by the built-in price table.
func NewEstimator() *Estimator {
	return &Estimator{
		table: DefaultTable(),
	}
}

// NewEstimatorWithTable creates an estimator backed by a specific table.
func NewEstimatorWithTable(table *Table) *Estimator {
	return &Estimator{
		table: table,
	}
}

// Estimate computes the monthly cost breakdown for a resolved environment.
// Unknown tiers never fail the estimate; they are priced at zero and
// reported through Breakdown.Warnings.
func (e *Estimator) Estimate(cfg *config.EffectiveConfig) *Breakdown {
	breakdown := &Breakdown{
		Project:      cfg.Project,
		Environment:  cfg.Environment,
		Region:       cfg.Region,
		Currency:     e.table.Currency,
		TableVersion: e.table.Version,
		Items:        make([]LineItem, 0, 3),
	}

	// Worker nodes
	nodePrice, ok := e.table.ComputePrice(cfg.NodeType)
	if !ok {
		breakdown.Warnings = append(breakdown.Warnings,
			fmt.Sprintf("unknown compute tier %q, priced at zero", cfg.NodeType))
	}
	clusterTotal := nodePrice.Mul(decimal.NewFromInt(int64(cfg.NodeCount)))

	breakdown.Items = append(breakdown.Items, LineItem{
		Description: "Worker Nodes",
		Quantity:    cfg.NodeCount,
		Unit:        cfg.NodeType,
		UnitPrice:   nodePrice,
		Total:       clusterTotal,
	})

	// Managed database, two nodes when HA
	dbPrice, ok := e.table.DatabasePrice(cfg.DatabaseNodeType)
	if !ok {
		breakdown.Warnings = append(breakdown.Warnings,
			fmt.Sprintf("unknown database tier %q, priced at zero", cfg.DatabaseNodeType))
	}
	dbCount := 1
	if cfg.DatabaseIsHA {
		dbCount = 2
	}
	dbTotal := dbPrice.Mul(decimal.NewFromInt(int64(dbCount)))

	breakdown.Items = append(breakdown.Items, LineItem{
		Description: "Managed Database",
		Quantity:    dbCount,
		Unit:        cfg.DatabaseNodeType,
		UnitPrice:   dbPrice,
		Total:       dbTotal,
	})

	// Network: a load balancer when enabled, otherwise the public
	// gateway the private network still needs for egress.
	networkItem := LineItem{
		Description: "Load Balancer",
		Quantity:    1,
		Unit:        "LB-S",
		UnitPrice:   e.table.Network.LoadBalancer,
		Total:       e.table.Network.LoadBalancer,
	}
	if !cfg.LoadBalancerEnabled {
		networkItem = LineItem{
			Description: "Public Gateway",
			Quantity:    1,
			Unit:        "VPC-GW-S",
			UnitPrice:   e.table.Network.PublicGateway,
			Total:       e.table.Network.PublicGateway,
		}
	}
	breakdown.Items = append(breakdown.Items, networkItem)

	// Totals
	breakdown.ClusterCost = clusterTotal
	breakdown.DatabaseCost = dbTotal
	breakdown.NetworkCost = networkItem.Total
	breakdown.TotalCost = clusterTotal.Add(dbTotal).Add(networkItem.Total)

	return breakdown
}
