package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/devplane/devplane/internal/logging"
)

const (
	// ScalewayAPIEndpoint is the default Scaleway API endpoint.
	ScalewayAPIEndpoint = "https://api.scaleway.com"

	// CatalogEndpoint is the public product catalog path.
	CatalogEndpoint = "/product-catalog/v2alpha1/public-catalog/products"
)

// Client fetches price tables from the Scaleway product catalog.
type Client struct {
	token      string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a new pricing client. The token is optional; the
// public catalog does not require authentication.
func NewClient(token string) *Client {
	return &Client{
		token:    token,
		endpoint: ScalewayAPIEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithEndpoint creates a client with a custom endpoint (for testing).
func NewClientWithEndpoint(token, endpoint string) *Client {
	return &Client{
		token:    token,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchTable fetches the current price table from the catalog API.
func (c *Client) FetchTable(ctx context.Context) (*Table, error) {
	url := c.endpoint + CatalogEndpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("X-Auth-Token", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return parseCatalogResponse(body)
}

// Scaleway catalog response structures

type catalogResponse struct {
	Version  string           `json:"version"`
	Products []catalogProduct `json:"products"`
}

type catalogProduct struct {
	Sku      string       `json:"sku"`
	Category string       `json:"category"`
	Price    catalogPrice `json:"price"`
}

type catalogPrice struct {
	MonthlyNet string `json:"monthly_net"`
	Currency   string `json:"currency"`
}

// parseCatalogResponse parses the catalog response into a price table.
// Products with unparseable prices are skipped so that a later lookup
// surfaces them as unknown tiers instead of silently pricing them at zero.
func parseCatalogResponse(data []byte) (*Table, error) {
	var resp catalogResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse catalog response: %w", err)
	}

	table := &Table{
		Version:  resp.Version,
		Currency: CurrencyEUR,
		Compute:  make(map[string]decimal.Decimal),
		Database: make(map[string]decimal.Decimal),
	}
	if table.Version == "" {
		table.Version = "live-" + time.Now().UTC().Format("2006-01-02")
	}

	for _, p := range resp.Products {
		price, ok := parsePrice(p.Price.MonthlyNet)
		if !ok {
			continue
		}
		switch p.Category {
		case "compute":
			table.Compute[p.Sku] = price
		case "database":
			table.Database[p.Sku] = price
		case "network":
			switch p.Sku {
			case "LB-S":
				table.Network.LoadBalancer = price
			case "VPC-GW-S":
				table.Network.PublicGateway = price
			}
		}
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	return table, nil
}

// parsePrice converts a price string (e.g., "66.4300") to a decimal.
func parsePrice(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FetchOrDefault fetches the live price table, falling back to the
// built-in table on any error.
func FetchOrDefault(ctx context.Context, token string) *Table {
	client := NewClient(token)
	table, err := client.FetchTable(ctx)
	if err != nil {
		logging.Sugar.Warnw("live pricing unavailable, using builtin table",
			"version", DefaultTableVersion,
			"error", err)
		return DefaultTable()
	}

	return table
}
