package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	project := "coder"
	env := "dev"

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "Cluster",
			got:      Cluster(project, env),
			expected: "coder-dev-cluster",
		},
		{
			name:     "NodePool",
			got:      NodePool(project, env),
			expected: "coder-dev-pool",
		},
		{
			name:     "PrivateNetwork",
			got:      PrivateNetwork(project, env),
			expected: "coder-dev-network",
		},
		{
			name:     "LoadBalancer",
			got:      LoadBalancer(project, env),
			expected: "coder-dev-lb",
		},
		{
			name:     "Database",
			got:      Database(project, env),
			expected: "coder_dev_db",
		},
		{
			name:     "DatabaseUser",
			got:      DatabaseUser(project),
			expected: "coder_admin",
		},
		{
			name:     "StateBucket",
			got:      StateBucket(project, env),
			expected: "terraform-state-coder-dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tt.got)
			}
		})
	}
}

func TestHyphenatedProjectNames(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "Cluster keeps hyphens",
			got:      Cluster("acme-labs", "staging"),
			expected: "acme-labs-staging-cluster",
		},
		{
			name:     "Database replaces hyphens",
			got:      Database("acme-labs", "staging"),
			expected: "acme_labs_staging_db",
		},
		{
			name:     "DatabaseUser replaces hyphens",
			got:      DatabaseUser("acme-labs"),
			expected: "acme_labs_admin",
		},
		{
			name:     "StateBucket keeps hyphens",
			got:      StateBucket("acme-labs", "prod"),
			expected: "terraform-state-acme-labs-prod",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tt.got)
			}
		})
	}
}
