package config

import (
	stderrors "errors"
	"fmt"

	"github.com/devplane/devplane/internal/errors"
)

// Origin records where a resolved field's value came from.
type Origin string

const (
	// OriginDefault means the environment defaults supplied the value.
	OriginDefault Origin = "default"
	// OriginOverride means an explicit override replaced the default.
	OriginOverride Origin = "override"
)

// EffectiveConfig is the fully resolved configuration for one environment.
// It is complete (no optional fields left) and treated as immutable: cost
// estimation, name derivation and rendering all read from it, none of them
// write to it.
type EffectiveConfig struct {
	Project             string      `yaml:"project" json:"project"`
	Environment         Environment `yaml:"environment" json:"environment"`
	Region              Region      `yaml:"region" json:"region"`
	Domain              string      `yaml:"domain,omitempty" json:"domain,omitempty"`
	Subdomain           string      `yaml:"subdomain,omitempty" json:"subdomain,omitempty"`
	LoadBalancerEnabled bool        `yaml:"load_balancer_enabled" json:"load_balancer_enabled"`

	Defaults `yaml:",inline"`

	// DefaultsVersion pins the registry generation this record was
	// resolved against.
	DefaultsVersion string `yaml:"defaults_version" json:"defaults_version"`

	// Origins maps each resolved field to default or override, answering
	// "why did I get this value" without re-deriving the merge.
	Origins map[string]Origin `yaml:"origins,omitempty" json:"origins,omitempty"`

	names NameOverrides
}

// Resolve expands a sparse Config into the complete EffectiveConfig.
//
// Resolution is deterministic and idempotent: defaults for the environment,
// overridden field by field where an override pointer is set, then checked
// against the cross-field constraints. All violations are reported together.
func Resolve(cfg *Config) (*EffectiveConfig, error) {
	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	if err := ValidateInputs(cfg.Project, cfg.Environment, region, cfg.Domain, cfg.Subdomain); err != nil {
		return nil, err
	}

	defaults, err := DefaultsFor(cfg.Environment)
	if err != nil {
		return nil, err
	}

	merged, origins := applyOverrides(defaults, cfg.Overrides)

	if err := checkConstraints(merged); err != nil {
		return nil, err
	}

	subdomain := cfg.Subdomain
	if cfg.Domain != "" && subdomain == "" {
		subdomain = "coder"
	}

	return &EffectiveConfig{
		Project:             cfg.Project,
		Environment:         cfg.Environment,
		Region:              region,
		Domain:              cfg.Domain,
		Subdomain:           subdomain,
		LoadBalancerEnabled: cfg.Network.LoadBalancerEnabled(),
		Defaults:            merged,
		DefaultsVersion:     DefaultsVersion,
		Origins:             origins,
		names:               cfg.Names,
	}, nil
}

// applyOverrides merges overrides onto defaults one field at a time and
// records each field's origin.
func applyOverrides(defaults Defaults, o Overrides) (Defaults, map[string]Origin) {
	merged := defaults
	origins := map[string]Origin{
		"node_count":                     OriginDefault,
		"node_type":                      OriginDefault,
		"min_size":                       OriginDefault,
		"max_size":                       OriginDefault,
		"database_node_type":             OriginDefault,
		"database_is_ha":                 OriginDefault,
		"database_backup_retention_days": OriginDefault,
		"enable_monitoring":              OriginDefault,
		"enable_pod_security":            OriginDefault,
		"enable_network_policy":          OriginDefault,
	}

	if o.NodeCount != nil {
		merged.NodeCount = *o.NodeCount
		origins["node_count"] = OriginOverride
	}
	if o.NodeType != nil {
		merged.NodeType = *o.NodeType
		origins["node_type"] = OriginOverride
	}
	if o.MinSize != nil {
		merged.MinSize = *o.MinSize
		origins["min_size"] = OriginOverride
	}
	if o.MaxSize != nil {
		merged.MaxSize = *o.MaxSize
		origins["max_size"] = OriginOverride
	}
	if o.DatabaseNodeType != nil {
		merged.DatabaseNodeType = *o.DatabaseNodeType
		origins["database_node_type"] = OriginOverride
	}
	if o.DatabaseIsHA != nil {
		merged.DatabaseIsHA = *o.DatabaseIsHA
		origins["database_is_ha"] = OriginOverride
	}
	if o.DatabaseBackupRetentionDays != nil {
		merged.DatabaseBackupRetentionDays = *o.DatabaseBackupRetentionDays
		origins["database_backup_retention_days"] = OriginOverride
	}
	if o.EnableMonitoring != nil {
		merged.EnableMonitoring = *o.EnableMonitoring
		origins["enable_monitoring"] = OriginOverride
	}
	if o.EnablePodSecurity != nil {
		merged.EnablePodSecurity = *o.EnablePodSecurity
		origins["enable_pod_security"] = OriginOverride
	}
	if o.EnableNetworkPolicy != nil {
		merged.EnableNetworkPolicy = *o.EnableNetworkPolicy
		origins["enable_network_policy"] = OriginOverride
	}

	return merged, origins
}

// checkConstraints enforces the cross-field invariants on a merged record.
// Every resolved configuration must satisfy min_size <= node_count <=
// max_size; a violation anywhere is a resolution failure, not a warning.
func checkConstraints(d Defaults) error {
	var errs []error

	if d.NodeCount < 1 {
		errs = append(errs, errors.InvalidInput("node_count", d.NodeCount, "must be at least 1"))
	}
	if d.MinSize < 1 {
		errs = append(errs, errors.InvalidInput("min_size", d.MinSize, "must be at least 1"))
	}
	if d.MaxSize < d.MinSize {
		errs = append(errs, errors.InvalidInput("max_size", d.MaxSize, fmt.Sprintf("must be >= min_size (%d)", d.MinSize)))
	}
	if d.NodeCount < d.MinSize || d.NodeCount > d.MaxSize {
		errs = append(errs, errors.InvalidInput("node_count", d.NodeCount, fmt.Sprintf("must be within autoscaler bounds [%d, %d]", d.MinSize, d.MaxSize)))
	}
	if d.DatabaseBackupRetentionDays < 0 || d.DatabaseBackupRetentionDays > 365 {
		errs = append(errs, errors.InvalidInput("database_backup_retention_days", d.DatabaseBackupRetentionDays, "must be within [0, 365]"))
	}
	if d.NodeType == "" {
		errs = append(errs, errors.InvalidInput("node_type", d.NodeType, "must not be empty"))
	}
	if d.DatabaseNodeType == "" {
		errs = append(errs, errors.InvalidInput("database_node_type", d.DatabaseNodeType, "must not be empty"))
	}

	return stderrors.Join(errs...)
}
