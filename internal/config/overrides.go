package config

// Overrides is the sparse set of per-environment replacements. Every field
// is a pointer: nil means "keep the default", a non-nil pointer is an
// explicit override even when it points at the zero value. A user setting
// enable_monitoring: false on prod is a real decision and must survive
// resolution.
type Overrides struct {
	// NodeCount replaces the initial node pool size.
	NodeCount *int `yaml:"node_count,omitempty" json:"node_count,omitempty"`

	// NodeType replaces the node pool instance type.
	NodeType *string `yaml:"node_type,omitempty" json:"node_type,omitempty"`

	// MinSize replaces the autoscaler lower bound.
	MinSize *int `yaml:"min_size,omitempty" json:"min_size,omitempty"`

	// MaxSize replaces the autoscaler upper bound.
	MaxSize *int `yaml:"max_size,omitempty" json:"max_size,omitempty"`

	// DatabaseNodeType replaces the managed database instance type.
	DatabaseNodeType *string `yaml:"database_node_type,omitempty" json:"database_node_type,omitempty"`

	// DatabaseIsHA replaces the database high-availability toggle.
	DatabaseIsHA *bool `yaml:"database_is_ha,omitempty" json:"database_is_ha,omitempty"`

	// DatabaseBackupRetentionDays replaces the backup retention window.
	DatabaseBackupRetentionDays *int `yaml:"database_backup_retention_days,omitempty" json:"database_backup_retention_days,omitempty"`

	// EnableMonitoring replaces the monitoring stack toggle.
	EnableMonitoring *bool `yaml:"enable_monitoring,omitempty" json:"enable_monitoring,omitempty"`

	// EnablePodSecurity replaces the pod security standards toggle.
	EnablePodSecurity *bool `yaml:"enable_pod_security,omitempty" json:"enable_pod_security,omitempty"`

	// EnableNetworkPolicy replaces the network policy toggle.
	EnableNetworkPolicy *bool `yaml:"enable_network_policy,omitempty" json:"enable_network_policy,omitempty"`
}

// IsZero reports whether no override is set.
func (o Overrides) IsZero() bool {
	return o.NodeCount == nil &&
		o.NodeType == nil &&
		o.MinSize == nil &&
		o.MaxSize == nil &&
		o.DatabaseNodeType == nil &&
		o.DatabaseIsHA == nil &&
		o.DatabaseBackupRetentionDays == nil &&
		o.EnableMonitoring == nil &&
		o.EnablePodSecurity == nil &&
		o.EnableNetworkPolicy == nil
}

// NameOverrides replaces individual derived resource names. Empty fields
// keep the derived value.
type NameOverrides struct {
	ClusterName     string `yaml:"cluster_name,omitempty" json:"cluster_name,omitempty"`
	DatabaseName    string `yaml:"database_name,omitempty" json:"database_name,omitempty"`
	DatabaseUser    string `yaml:"database_user,omitempty" json:"database_user,omitempty"`
	StateBucketName string `yaml:"state_bucket_name,omitempty" json:"state_bucket_name,omitempty"`
}
