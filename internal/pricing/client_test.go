package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const catalogFixture = `{
	"version": "2025-08",
	"products": [
		{"sku": "GP1-XS", "category": "compute", "price": {"monthly_net": "66.4300", "currency": "EUR"}},
		{"sku": "GP1-S", "category": "compute", "price": {"monthly_net": "132.8600", "currency": "EUR"}},
		{"sku": "DB-DEV-S", "category": "database", "price": {"monthly_net": "11.2300", "currency": "EUR"}},
		{"sku": "LB-S", "category": "network", "price": {"monthly_net": "8.9000", "currency": "EUR"}},
		{"sku": "VPC-GW-S", "category": "network", "price": {"monthly_net": "2.9900", "currency": "EUR"}}
	]
}`

func TestClient_FetchTable(t *testing.T) {
	// Create a mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify auth header
		if r.Header.Get("X-Auth-Token") != "test-token" {
			t.Error("Missing or invalid X-Auth-Token header")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(catalogFixture))
	}))
	defer server.Close()

	client := NewClientWithEndpoint("test-token", server.URL)
	table, err := client.FetchTable(context.Background())
	if err != nil {
		t.Fatalf("FetchTable() error = %v", err)
	}

	// Verify parsed prices
	if table.Version != "2025-08" {
		t.Errorf("Version = %q, want 2025-08", table.Version)
	}
	if got := table.Compute["GP1-XS"].StringFixed(2); got != "66.43" {
		t.Errorf("GP1-XS price = %s, want 66.43", got)
	}
	if got := table.Compute["GP1-S"].StringFixed(2); got != "132.86" {
		t.Errorf("GP1-S price = %s, want 132.86", got)
	}
	if got := table.Database["DB-DEV-S"].StringFixed(2); got != "11.23" {
		t.Errorf("DB-DEV-S price = %s, want 11.23", got)
	}
	if got := table.Network.LoadBalancer.StringFixed(2); got != "8.90" {
		t.Errorf("LoadBalancer price = %s, want 8.90", got)
	}
	if got := table.Network.PublicGateway.StringFixed(2); got != "2.99" {
		t.Errorf("PublicGateway price = %s, want 2.99", got)
	}
}

func TestClient_FetchTable_NoTokenSendsNoHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["X-Auth-Token"]; ok {
			t.Error("X-Auth-Token header sent without a token")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(catalogFixture))
	}))
	defer server.Close()

	client := NewClientWithEndpoint("", server.URL)
	if _, err := client.FetchTable(context.Background()); err != nil {
		t.Fatalf("FetchTable() error = %v", err)
	}
}

func TestClient_FetchTable_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClientWithEndpoint("invalid-token", server.URL)
	_, err := client.FetchTable(context.Background())
	if err == nil {
		t.Error("FetchTable() expected error for unauthorized request")
	}
}

func TestClient_FetchTable_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	client := NewClientWithEndpoint("test-token", server.URL)
	_, err := client.FetchTable(context.Background())
	if err == nil {
		t.Error("FetchTable() expected error for invalid JSON")
	}
}

func TestClient_FetchTable_SkipsUnparseablePrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"version": "2025-08",
			"products": [
				{"sku": "GP1-XS", "category": "compute", "price": {"monthly_net": "66.4300", "currency": "EUR"}},
				{"sku": "GP1-S", "category": "compute", "price": {"monthly_net": "n/a", "currency": "EUR"}},
				{"sku": "DB-DEV-S", "category": "database", "price": {"monthly_net": "11.2300", "currency": "EUR"}}
			]
		}`))
	}))
	defer server.Close()

	client := NewClientWithEndpoint("", server.URL)
	table, err := client.FetchTable(context.Background())
	if err != nil {
		t.Fatalf("FetchTable() error = %v", err)
	}

	if _, ok := table.ComputePrice("GP1-XS"); !ok {
		t.Error("GP1-XS missing from fetched table")
	}
	// Unparseable price must be absent, not zero
	if _, ok := table.ComputePrice("GP1-S"); ok {
		t.Error("GP1-S with unparseable price should be skipped")
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"66.4300", "66.43", true},
		{"8.9000", "8.90", true},
		{"0", "0.00", true},
		{"", "0.00", false},
		{"invalid", "0.00", false},
	}

	for _, tt := range tests {
		got, ok := parsePrice(tt.input)
		if ok != tt.ok {
			t.Errorf("parsePrice(%q) ok = %v, want %v", tt.input, ok, tt.ok)
		}
		if got.StringFixed(2) != tt.want {
			t.Errorf("parsePrice(%q) = %s, want %s", tt.input, got.StringFixed(2), tt.want)
		}
	}
}

func TestFetchOrDefault_FallsBackOnError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	table := FetchOrDefault(ctx, "")
	if table.Version != DefaultTableVersion {
		t.Errorf("Version = %q, want builtin %q", table.Version, DefaultTableVersion)
	}
}
