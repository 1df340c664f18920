package naming

import (
	"fmt"
	"strings"
)

// Naming functions for platform resources.
// Every per-environment resource embeds the project and environment so
// resources from different environments never collide within one account.

const (
	// WorkspaceNamespace is the namespace the workspace application runs
	// in. Fixed, not project-derived.
	WorkspaceNamespace = "coder"

	// MonitoringNamespace holds the monitoring stack when it is enabled.
	MonitoringNamespace = "monitoring"
)

func Cluster(project, env string) string {
	return fmt.Sprintf("%s-%s-cluster", project, env)
}

func NodePool(project, env string) string {
	return fmt.Sprintf("%s-%s-pool", project, env)
}

func PrivateNetwork(project, env string) string {
	return fmt.Sprintf("%s-%s-network", project, env)
}

func LoadBalancer(project, env string) string {
	return fmt.Sprintf("%s-%s-lb", project, env)
}

func Database(project, env string) string {
	return fmt.Sprintf("%s_%s_db", underscored(project), env)
}

func DatabaseUser(project string) string {
	return fmt.Sprintf("%s_admin", underscored(project))
}

func StateBucket(project, env string) string {
	return fmt.Sprintf("terraform-state-%s-%s", project, env)
}

// underscored rewrites a hyphenated project name into a legal SQL
// identifier fragment.
func underscored(project string) string {
	return strings.ReplaceAll(project, "-", "_")
}
