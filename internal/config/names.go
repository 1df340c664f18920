package config

import (
	"github.com/devplane/devplane/internal/util/naming"
)

// DerivedNames is the set of resource names the provisioning layer consumes.
// All fields are deterministic functions of project, environment and the
// explicit name overrides; deriving twice always yields the same names.
//
// Uniqueness holds per project and environment by construction. Globally
// scoped names (the state bucket) can still collide with other accounts;
// that surfaces at bootstrap time as a NAME_COLLISION error, not here.
type DerivedNames struct {
	ClusterName string `yaml:"cluster_name" json:"cluster_name"`

	// DatabaseName uses underscores because hyphens are illegal in
	// PostgreSQL identifiers.
	DatabaseName string `yaml:"database_name" json:"database_name"`
	DatabaseUser string `yaml:"database_user" json:"database_user"`

	// Namespace is where the workspace application runs. Fixed.
	Namespace string `yaml:"namespace" json:"namespace"`

	// MonitoringNamespace is set only when monitoring is enabled.
	MonitoringNamespace string `yaml:"monitoring_namespace,omitempty" json:"monitoring_namespace,omitempty"`

	StateBucketName string `yaml:"state_bucket_name" json:"state_bucket_name"`
}

// DeriveNames computes the resource names for a project and environment,
// honoring explicit overrides field by field.
func DeriveNames(project string, env Environment, monitoring bool, o NameOverrides) DerivedNames {
	names := DerivedNames{
		ClusterName:     naming.Cluster(project, string(env)),
		DatabaseName:    naming.Database(project, string(env)),
		DatabaseUser:    naming.DatabaseUser(project),
		Namespace:       naming.WorkspaceNamespace,
		StateBucketName: naming.StateBucket(project, string(env)),
	}
	if monitoring {
		names.MonitoringNamespace = naming.MonitoringNamespace
	}

	if o.ClusterName != "" {
		names.ClusterName = o.ClusterName
	}
	if o.DatabaseName != "" {
		names.DatabaseName = o.DatabaseName
	}
	if o.DatabaseUser != "" {
		names.DatabaseUser = o.DatabaseUser
	}
	if o.StateBucketName != "" {
		names.StateBucketName = o.StateBucketName
	}

	return names
}

// DerivedNames returns the resource names for this resolved configuration.
func (c *EffectiveConfig) DerivedNames() DerivedNames {
	return DeriveNames(c.Project, c.Environment, c.EnableMonitoring, c.names)
}
