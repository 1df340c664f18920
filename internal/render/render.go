// Package render generates the Terraform inputs for a resolved environment:
// a tfvars file and its JSON equivalent, carrying the resolved fields and
// derived names the downstream modules consume.
package render

import (
	"encoding/json"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/devplane/devplane/internal/config"
)

// TFVarsFilename returns the tfvars filename for an environment.
func TFVarsFilename(env config.Environment) string {
	return string(env) + ".tfvars"
}

// TFVarsJSONFilename returns the tfvars.json filename for an environment.
func TFVarsJSONFilename(env config.Environment) string {
	return string(env) + ".tfvars.json"
}

// TFVars renders the resolved configuration as HCL variable assignments.
// Attribute order is fixed so reruns produce byte-identical output.
func TFVars(cfg *config.EffectiveConfig) []byte {
	names := cfg.DerivedNames()

	f := hclwrite.NewEmptyFile()
	body := f.Body()

	body.AppendUnstructuredTokens(hclwrite.Tokens{{
		Type:  hclsyntax.TokenComment,
		Bytes: []byte("# Generated by devplane render. Do not edit; rerun the command instead.\n"),
	}})
	body.AppendNewline()

	body.SetAttributeValue("project", cty.StringVal(cfg.Project))
	body.SetAttributeValue("environment", cty.StringVal(string(cfg.Environment)))
	body.SetAttributeValue("region", cty.StringVal(string(cfg.Region)))
	if cfg.Domain != "" {
		body.SetAttributeValue("domain", cty.StringVal(cfg.Domain))
		body.SetAttributeValue("subdomain", cty.StringVal(cfg.Subdomain))
	}
	body.AppendNewline()

	body.SetAttributeValue("cluster_name", cty.StringVal(names.ClusterName))
	body.SetAttributeValue("node_count", cty.NumberIntVal(int64(cfg.NodeCount)))
	body.SetAttributeValue("node_type", cty.StringVal(cfg.NodeType))
	body.SetAttributeValue("min_size", cty.NumberIntVal(int64(cfg.MinSize)))
	body.SetAttributeValue("max_size", cty.NumberIntVal(int64(cfg.MaxSize)))
	body.AppendNewline()

	body.SetAttributeValue("database_name", cty.StringVal(names.DatabaseName))
	body.SetAttributeValue("database_user", cty.StringVal(names.DatabaseUser))
	body.SetAttributeValue("database_node_type", cty.StringVal(cfg.DatabaseNodeType))
	body.SetAttributeValue("database_is_ha", cty.BoolVal(cfg.DatabaseIsHA))
	body.SetAttributeValue("database_backup_retention_days", cty.NumberIntVal(int64(cfg.DatabaseBackupRetentionDays)))
	body.AppendNewline()

	body.SetAttributeValue("namespace", cty.StringVal(names.Namespace))
	if names.MonitoringNamespace != "" {
		body.SetAttributeValue("monitoring_namespace", cty.StringVal(names.MonitoringNamespace))
	}
	body.SetAttributeValue("enable_monitoring", cty.BoolVal(cfg.EnableMonitoring))
	body.SetAttributeValue("enable_pod_security", cty.BoolVal(cfg.EnablePodSecurity))
	body.SetAttributeValue("enable_network_policy", cty.BoolVal(cfg.EnableNetworkPolicy))
	body.SetAttributeValue("load_balancer_enabled", cty.BoolVal(cfg.LoadBalancerEnabled))
	body.AppendNewline()

	body.SetAttributeValue("state_bucket_name", cty.StringVal(names.StateBucketName))

	return f.Bytes()
}

// TFVarsJSON renders the same variables as a tfvars.json document.
func TFVarsJSON(cfg *config.EffectiveConfig) ([]byte, error) {
	names := cfg.DerivedNames()

	doc := struct {
		Project                     string `json:"project"`
		Environment                 string `json:"environment"`
		Region                      string `json:"region"`
		Domain                      string `json:"domain,omitempty"`
		Subdomain                   string `json:"subdomain,omitempty"`
		ClusterName                 string `json:"cluster_name"`
		NodeCount                   int    `json:"node_count"`
		NodeType                    string `json:"node_type"`
		MinSize                     int    `json:"min_size"`
		MaxSize                     int    `json:"max_size"`
		DatabaseName                string `json:"database_name"`
		DatabaseUser                string `json:"database_user"`
		DatabaseNodeType            string `json:"database_node_type"`
		DatabaseIsHA                bool   `json:"database_is_ha"`
		DatabaseBackupRetentionDays int    `json:"database_backup_retention_days"`
		Namespace                   string `json:"namespace"`
		MonitoringNamespace         string `json:"monitoring_namespace,omitempty"`
		EnableMonitoring            bool   `json:"enable_monitoring"`
		EnablePodSecurity           bool   `json:"enable_pod_security"`
		EnableNetworkPolicy         bool   `json:"enable_network_policy"`
		LoadBalancerEnabled         bool   `json:"load_balancer_enabled"`
		StateBucketName             string `json:"state_bucket_name"`
	}{
		Project:                     cfg.Project,
		Environment:                 string(cfg.Environment),
		Region:                      string(cfg.Region),
		Domain:                      cfg.Domain,
		Subdomain:                   cfg.Subdomain,
		ClusterName:                 names.ClusterName,
		NodeCount:                   cfg.NodeCount,
		NodeType:                    cfg.NodeType,
		MinSize:                     cfg.MinSize,
		MaxSize:                     cfg.MaxSize,
		DatabaseName:                names.DatabaseName,
		DatabaseUser:                names.DatabaseUser,
		DatabaseNodeType:            cfg.DatabaseNodeType,
		DatabaseIsHA:                cfg.DatabaseIsHA,
		DatabaseBackupRetentionDays: cfg.DatabaseBackupRetentionDays,
		Namespace:                   names.Namespace,
		MonitoringNamespace:         names.MonitoringNamespace,
		EnableMonitoring:            cfg.EnableMonitoring,
		EnablePodSecurity:           cfg.EnablePodSecurity,
		EnableNetworkPolicy:         cfg.EnableNetworkPolicy,
		LoadBalancerEnabled:         cfg.LoadBalancerEnabled,
		StateBucketName:             names.StateBucketName,
	}

	return json.MarshalIndent(doc, "", "  ")
}
