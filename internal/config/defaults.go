package config

import (
	"github.com/devplane/devplane/internal/errors"
)

// DefaultsVersion identifies the defaults generation. Bumped together with
// the pricing table so saved estimates stay reproducible against a known
// defaults/pricing pair.
const DefaultsVersion = "2025-07"

// Defaults is the complete per-environment parameter set. Every field
// participates in resolution; overrides replace fields one at a time.
type Defaults struct {
	// NodeCount is the initial size of the Kapsule node pool.
	NodeCount int `yaml:"node_count" json:"node_count"`

	// NodeType is the Scaleway instance type for pool nodes.
	NodeType string `yaml:"node_type" json:"node_type"`

	// MinSize is the autoscaler lower bound.
	MinSize int `yaml:"min_size" json:"min_size"`

	// MaxSize is the autoscaler upper bound.
	MaxSize int `yaml:"max_size" json:"max_size"`

	// DatabaseNodeType is the managed PostgreSQL instance type.
	DatabaseNodeType string `yaml:"database_node_type" json:"database_node_type"`

	// DatabaseIsHA enables the standby database node.
	DatabaseIsHA bool `yaml:"database_is_ha" json:"database_is_ha"`

	// DatabaseBackupRetentionDays is the automated backup window.
	DatabaseBackupRetentionDays int `yaml:"database_backup_retention_days" json:"database_backup_retention_days"`

	// EnableMonitoring deploys the monitoring stack.
	EnableMonitoring bool `yaml:"enable_monitoring" json:"enable_monitoring"`

	// EnablePodSecurity enforces pod security standards.
	EnablePodSecurity bool `yaml:"enable_pod_security" json:"enable_pod_security"`

	// EnableNetworkPolicy enforces namespace network policies.
	EnableNetworkPolicy bool `yaml:"enable_network_policy" json:"enable_network_policy"`
}

// environmentDefaults is the registry of opinionated per-environment
// parameter sets. Dev is sized for a handful of workspaces on burstable
// tiers; staging mirrors prod's policies at reduced capacity; prod runs HA
// with the widest autoscaling range. Entries must satisfy
// min_size <= node_count <= max_size.
var environmentDefaults = map[Environment]Defaults{
	EnvDev: {
		NodeCount:                   2,
		NodeType:                    "GP1-XS",
		MinSize:                     1,
		MaxSize:                     3,
		DatabaseNodeType:            "DB-DEV-S",
		DatabaseIsHA:                false,
		DatabaseBackupRetentionDays: 7,
		EnableMonitoring:            false,
		EnablePodSecurity:           false,
		EnableNetworkPolicy:         false,
	},
	EnvStaging: {
		NodeCount:                   3,
		NodeType:                    "GP1-XS",
		MinSize:                     2,
		MaxSize:                     5,
		DatabaseNodeType:            "DB-GP-XS",
		DatabaseIsHA:                false,
		DatabaseBackupRetentionDays: 14,
		EnableMonitoring:            true,
		EnablePodSecurity:           true,
		EnableNetworkPolicy:         true,
	},
	EnvProd: {
		NodeCount:                   5,
		NodeType:                    "GP1-S",
		MinSize:                     3,
		MaxSize:                     10,
		DatabaseNodeType:            "DB-GP-S",
		DatabaseIsHA:                true,
		DatabaseBackupRetentionDays: 30,
		EnableMonitoring:            true,
		EnablePodSecurity:           true,
		EnableNetworkPolicy:         true,
	},
}

// DefaultsFor returns a copy of the defaults for the given environment.
// The registry itself is never exposed; callers cannot mutate it.
func DefaultsFor(env Environment) (Defaults, error) {
	d, ok := environmentDefaults[env]
	if !ok {
		return Defaults{}, errors.InvalidInput("environment", string(env), "must be one of dev, staging, prod")
	}
	return d, nil
}
