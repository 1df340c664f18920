package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/devplane/devplane/internal/config"
	"github.com/devplane/devplane/internal/util/ptr"
)

func mustResolve(t *testing.T, cfg *config.Config) *config.EffectiveConfig {
	t.Helper()
	resolved, err := config.Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return resolved
}

// parseTFVars parses rendered output back into its attribute values.
func parseTFVars(t *testing.T, data []byte) map[string]cty.Value {
	t.Helper()

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, "test.tfvars")
	if diags.HasErrors() {
		t.Fatalf("rendered tfvars does not parse: %v", diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		t.Fatalf("rendered tfvars has non-attribute content: %v", diags)
	}

	values := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(&hcl.EvalContext{})
		if diags.HasErrors() {
			t.Fatalf("attribute %s does not evaluate: %v", name, diags)
		}
		values[name] = val
	}
	return values
}

func TestTFVars_Dev(t *testing.T) {
	resolved := mustResolve(t, &config.Config{
		Project:     "coder",
		Environment: config.EnvDev,
	})

	values := parseTFVars(t, TFVars(resolved))

	want := map[string]cty.Value{
		"project":                        cty.StringVal("coder"),
		"environment":                    cty.StringVal("dev"),
		"region":                         cty.StringVal("fr-par"),
		"cluster_name":                   cty.StringVal("coder-dev-cluster"),
		"node_count":                     cty.NumberIntVal(2),
		"node_type":                      cty.StringVal("GP1-XS"),
		"min_size":                       cty.NumberIntVal(1),
		"max_size":                       cty.NumberIntVal(3),
		"database_name":                  cty.StringVal("coder_dev_db"),
		"database_user":                  cty.StringVal("coder_admin"),
		"database_node_type":             cty.StringVal("DB-DEV-S"),
		"database_is_ha":                 cty.BoolVal(false),
		"database_backup_retention_days": cty.NumberIntVal(7),
		"namespace":                      cty.StringVal("coder"),
		"enable_monitoring":              cty.BoolVal(false),
		"enable_pod_security":            cty.BoolVal(false),
		"enable_network_policy":          cty.BoolVal(false),
		"load_balancer_enabled":          cty.BoolVal(true),
		"state_bucket_name":              cty.StringVal("terraform-state-coder-dev"),
	}

	if len(values) != len(want) {
		t.Errorf("attribute count = %d, want %d", len(values), len(want))
	}
	for name, wantVal := range want {
		got, ok := values[name]
		if !ok {
			t.Errorf("missing attribute %s", name)
			continue
		}
		if !wantVal.RawEquals(got) {
			t.Errorf("%s = %#v, want %#v", name, got, wantVal)
		}
	}

	// dev has monitoring disabled, so no monitoring namespace
	if _, ok := values["monitoring_namespace"]; ok {
		t.Error("monitoring_namespace rendered with monitoring disabled")
	}
	if _, ok := values["domain"]; ok {
		t.Error("domain rendered without a configured domain")
	}
}

func TestTFVars_ProdIncludesMonitoringNamespace(t *testing.T) {
	resolved := mustResolve(t, &config.Config{
		Project:     "coder",
		Environment: config.EnvProd,
	})

	values := parseTFVars(t, TFVars(resolved))

	if got := values["monitoring_namespace"]; !cty.StringVal("monitoring").RawEquals(got) {
		t.Errorf("monitoring_namespace = %#v, want monitoring", got)
	}
	if got := values["database_is_ha"]; !cty.BoolVal(true).RawEquals(got) {
		t.Errorf("database_is_ha = %#v, want true", got)
	}
}

func TestTFVars_DomainAndSubdomain(t *testing.T) {
	resolved := mustResolve(t, &config.Config{
		Project:     "coder",
		Environment: config.EnvDev,
		Domain:      "example.com",
	})

	values := parseTFVars(t, TFVars(resolved))

	if got := values["domain"]; !cty.StringVal("example.com").RawEquals(got) {
		t.Errorf("domain = %#v, want example.com", got)
	}
	// subdomain defaults alongside the domain
	if got := values["subdomain"]; !cty.StringVal("coder").RawEquals(got) {
		t.Errorf("subdomain = %#v, want coder", got)
	}
}

func TestTFVars_Deterministic(t *testing.T) {
	resolved := mustResolve(t, &config.Config{
		Project:     "coder",
		Environment: config.EnvStaging,
		Overrides: config.Overrides{
			NodeCount: ptr.Int(4),
		},
	})

	first := TFVars(resolved)
	second := TFVars(resolved)

	if !bytes.Equal(first, second) {
		t.Error("renders of the same config differ")
	}
}

func TestTFVarsJSON(t *testing.T) {
	resolved := mustResolve(t, &config.Config{
		Project:     "coder",
		Environment: config.EnvDev,
	})

	data, err := TFVarsJSON(resolved)
	if err != nil {
		t.Fatalf("TFVarsJSON() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc["cluster_name"] != "coder-dev-cluster" {
		t.Errorf("cluster_name = %v, want coder-dev-cluster", doc["cluster_name"])
	}
	if doc["node_count"] != float64(2) {
		t.Errorf("node_count = %v, want 2", doc["node_count"])
	}
	if doc["state_bucket_name"] != "terraform-state-coder-dev" {
		t.Errorf("state_bucket_name = %v, want terraform-state-coder-dev", doc["state_bucket_name"])
	}
	if _, ok := doc["domain"]; ok {
		t.Error("domain present without a configured domain")
	}
	if _, ok := doc["monitoring_namespace"]; ok {
		t.Error("monitoring_namespace present with monitoring disabled")
	}
}

func TestFilenames(t *testing.T) {
	if got := TFVarsFilename(config.EnvDev); got != "dev.tfvars" {
		t.Errorf("TFVarsFilename = %q, want dev.tfvars", got)
	}
	if got := TFVarsJSONFilename(config.EnvProd); got != "prod.tfvars.json" {
		t.Errorf("TFVarsJSONFilename = %q, want prod.tfvars.json", got)
	}
}
