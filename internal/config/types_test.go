package config

import (
	"testing"

	"github.com/devplane/devplane/internal/util/ptr"
)

func TestEnvironmentIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env   Environment
		valid bool
	}{
		{EnvDev, true},
		{EnvStaging, true},
		{EnvProd, true},
		{"qa", false},
		{"production", false},
		{"DEV", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.env.IsValid(); got != tt.valid {
			t.Errorf("Environment(%q).IsValid() = %v, want %v", tt.env, got, tt.valid)
		}
	}

	if len(ValidEnvironments()) != 3 {
		t.Errorf("ValidEnvironments() length = %d, want 3", len(ValidEnvironments()))
	}
}

func TestRegionIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		region Region
		valid  bool
	}{
		{RegionParis, true},
		{RegionAmsterdam, true},
		{RegionWarsaw, true},
		{"fsn1", false},
		{"us-east-1", false},
		{"FR-PAR", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.region.IsValid(); got != tt.valid {
			t.Errorf("Region(%q).IsValid() = %v, want %v", tt.region, got, tt.valid)
		}
	}
}

func TestRegionS3Endpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		region   Region
		expected string
	}{
		{RegionParis, "https://s3.fr-par.scw.cloud"},
		{RegionAmsterdam, "https://s3.nl-ams.scw.cloud"},
		{RegionWarsaw, "https://s3.pl-waw.scw.cloud"},
	}

	for _, tt := range tests {
		if got := tt.region.S3Endpoint(); got != tt.expected {
			t.Errorf("S3Endpoint(%q) = %q, want %q", tt.region, got, tt.expected)
		}
	}
}

func TestEnumStringsAreDescriptive(t *testing.T) {
	t.Parallel()

	if got := RegionParis.String(); got != "fr-par (Paris, France)" {
		t.Errorf("RegionParis.String() = %q", got)
	}
	if got := Region("custom").String(); got != "custom" {
		t.Errorf("unknown region String() = %q, want raw value", got)
	}
	if got := Environment("custom").String(); got != "custom" {
		t.Errorf("unknown environment String() = %q, want raw value", got)
	}
}

func TestNetworkConfigLoadBalancerEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      NetworkConfig
		expected bool
	}{
		{"unset defaults to enabled", NetworkConfig{}, true},
		{"explicit true", NetworkConfig{LoadBalancer: ptr.Bool(true)}, true},
		{"explicit false", NetworkConfig{LoadBalancer: ptr.Bool(false)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.LoadBalancerEnabled(); got != tt.expected {
				t.Errorf("LoadBalancerEnabled() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestOverridesIsZero(t *testing.T) {
	t.Parallel()

	if !(Overrides{}).IsZero() {
		t.Error("empty Overrides should be zero")
	}
	if (Overrides{NodeCount: ptr.Int(2)}).IsZero() {
		t.Error("Overrides with a set field should not be zero")
	}
	if (Overrides{EnableNetworkPolicy: ptr.Bool(false)}).IsZero() {
		t.Error("a pointer to false is still an explicit override")
	}
}
