package config

// Config is the user-facing configuration for one platform environment.
// Only project and environment are required; everything else falls back to
// the per-environment defaults.
type Config struct {
	// Project is the project name, used for resource naming and tagging.
	// Must be DNS-safe: lowercase alphanumeric and hyphens, must start
	// with a letter.
	Project string `yaml:"project" json:"project"`

	// Environment selects the defaults tier (dev, staging, prod).
	Environment Environment `yaml:"environment" json:"environment"`

	// Region is the Scaleway region. Defaults to fr-par.
	Region Region `yaml:"region,omitempty" json:"region,omitempty"`

	// Domain enables domain-based access when set. Workspaces are served
	// under {subdomain}.{domain}. Empty means IP-based access.
	Domain string `yaml:"domain,omitempty" json:"domain,omitempty"`

	// Subdomain is the host label for the workspace application
	// (default: "coder"). Only used when Domain is set.
	Subdomain string `yaml:"subdomain,omitempty" json:"subdomain,omitempty"`

	// Network holds the networking toggles for the environment.
	Network NetworkConfig `yaml:"network,omitempty" json:"network,omitempty"`

	// Overrides are the sparse per-field replacements applied on top of
	// the environment defaults. Absent fields keep the default.
	Overrides Overrides `yaml:"overrides,omitempty" json:"overrides,omitempty"`

	// Names replaces individual derived resource names. Absent fields
	// are derived from project and environment.
	Names NameOverrides `yaml:"names,omitempty" json:"names,omitempty"`
}

// NetworkConfig holds the environment's networking toggles.
type NetworkConfig struct {
	// LoadBalancer controls whether the environment fronts workspaces
	// with a managed load balancer. Unset means enabled; disabling it
	// falls back to a flexible IP on the node pool.
	LoadBalancer *bool `yaml:"load_balancer,omitempty" json:"load_balancer,omitempty"`
}

// LoadBalancerEnabled reports the resolved load balancer toggle.
func (n NetworkConfig) LoadBalancerEnabled() bool {
	if n.LoadBalancer == nil {
		return true
	}
	return *n.LoadBalancer
}

// Environment is a platform environment tier.
type Environment string

const (
	// EnvDev is the development environment: small, single everything,
	// no hardening.
	EnvDev Environment = "dev"
	// EnvStaging is the pre-production environment: prod-shaped with
	// smaller capacity.
	EnvStaging Environment = "staging"
	// EnvProd is the production environment: HA database, hardened
	// policies, widest autoscaling range.
	EnvProd Environment = "prod"
)

// ValidEnvironments returns all valid environments in promotion order.
func ValidEnvironments() []Environment {
	return []Environment{EnvDev, EnvStaging, EnvProd}
}

// IsValid returns true if the environment is known.
func (e Environment) IsValid() bool {
	switch e {
	case EnvDev, EnvStaging, EnvProd:
		return true
	default:
		return false
	}
}

// String returns a human-readable description of the environment.
func (e Environment) String() string {
	switch e {
	case EnvDev:
		return "dev (minimal footprint)"
	case EnvStaging:
		return "staging (pre-production)"
	case EnvProd:
		return "prod (HA, hardened)"
	default:
		return string(e)
	}
}

// Region is a Scaleway region.
type Region string

const (
	// RegionParis is the Paris, France region (fr-par).
	RegionParis Region = "fr-par"
	// RegionAmsterdam is the Amsterdam, Netherlands region (nl-ams).
	RegionAmsterdam Region = "nl-ams"
	// RegionWarsaw is the Warsaw, Poland region (pl-waw).
	RegionWarsaw Region = "pl-waw"
)

// DefaultRegion is used when no region is configured.
const DefaultRegion = RegionParis

// ValidRegions returns all valid regions.
func ValidRegions() []Region {
	return []Region{RegionParis, RegionAmsterdam, RegionWarsaw}
}

// IsValid returns true if the region is a valid Scaleway region.
func (r Region) IsValid() bool {
	switch r {
	case RegionParis, RegionAmsterdam, RegionWarsaw:
		return true
	default:
		return false
	}
}

// String returns a human-readable description of the region.
func (r Region) String() string {
	switch r {
	case RegionParis:
		return "fr-par (Paris, France)"
	case RegionAmsterdam:
		return "nl-ams (Amsterdam, Netherlands)"
	case RegionWarsaw:
		return "pl-waw (Warsaw, Poland)"
	default:
		return string(r)
	}
}

// S3Endpoint returns the Object Storage endpoint for the region.
func (r Region) S3Endpoint() string {
	return "https://s3." + string(r) + ".scw.cloud"
}
