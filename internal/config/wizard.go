package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the user's choices from the wizard.
type WizardResult struct {
	Project      string
	Environment  Environment
	Region       Region
	Domain       string
	Subdomain    string
	Monitoring   bool
	LoadBalancer bool
}

// RunWizard runs the interactive environment setup wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Project:      "coder",
		Environment:  EnvDev,
		Region:       DefaultRegion,
		Subdomain:    "coder",
		LoadBalancer: true,
	}

	form := huh.NewForm(
		// Project identity
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Used in every resource name (DNS-safe, lowercase)").
				Placeholder("coder").
				Value(&result.Project).
				Validate(validateProjectNameInput),
		),

		// Environment selection
		huh.NewGroup(
			huh.NewSelect[Environment]().
				Title("Environment").
				Description("dev: minimal, ~€153/mo | staging: pre-prod, ~€288/mo | prod: HA, ~€994/mo").
				Options(
					huh.NewOption("Development (2 × GP1-XS, DB-DEV-S)", EnvDev),
					huh.NewOption("Staging (3 × GP1-XS, DB-GP-XS)", EnvStaging),
					huh.NewOption("Production (5 × GP1-S, DB-GP-S HA)", EnvProd),
				).
				Value(&result.Environment),
		),

		// Region selection
		huh.NewGroup(
			huh.NewSelect[Region]().
				Title("Region").
				Description("Scaleway region hosting the environment").
				Options(
					huh.NewOption("Paris, France (fr-par)", RegionParis),
					huh.NewOption("Amsterdam, Netherlands (nl-ams)", RegionAmsterdam),
					huh.NewOption("Warsaw, Poland (pl-waw)", RegionWarsaw),
				).
				Value(&result.Region),
		),

		// Optional domain-based access
		huh.NewGroup(
			huh.NewInput().
				Title("Domain (optional)").
				Description("Workspaces served under {subdomain}.{domain}. Leave empty for IP-based access.").
				Placeholder("example.com").
				Value(&result.Domain).
				Validate(validateDomainInput),

			huh.NewInput().
				Title("Subdomain").
				Description("Host label for the workspace app (only used with a domain)").
				Placeholder("coder").
				Value(&result.Subdomain).
				Validate(validateSubdomainInput),
		),

		// Monitoring
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable monitoring?").
				Description("Prometheus + Grafana in the monitoring namespace (on by default for staging and prod)").
				Value(&result.Monitoring),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result to a Config. Only choices that differ
// from the environment defaults become overrides, so the generated YAML
// stays sparse.
func (r *WizardResult) ToConfig() *Config {
	cfg := &Config{
		Project:     r.Project,
		Environment: r.Environment,
		Region:      r.Region,
		Domain:      r.Domain,
	}

	if r.Domain != "" {
		cfg.Subdomain = r.Subdomain
	}

	if defaults, err := DefaultsFor(r.Environment); err == nil && r.Monitoring != defaults.EnableMonitoring {
		monitoring := r.Monitoring
		cfg.Overrides.EnableMonitoring = &monitoring
	}

	if !r.LoadBalancer {
		lb := false
		cfg.Network.LoadBalancer = &lb
	}

	return cfg
}

// validateProjectNameInput validates the project name as typed.
func validateProjectNameInput(s string) error {
	if s == "" {
		return fmt.Errorf("project name is required")
	}
	if len(s) > 63 {
		return fmt.Errorf("project name must be 63 characters or less")
	}
	if !isValidProjectName(strings.ToLower(s)) {
		return fmt.Errorf("project name can only contain lowercase letters, numbers, and hyphens, starting with a letter")
	}
	return nil
}

// validateDomainInput validates the optional domain as typed.
func validateDomainInput(s string) error {
	if s == "" {
		return nil
	}
	if !isValidDomain(s) {
		return fmt.Errorf("must be a valid domain name (e.g. example.com)")
	}
	return nil
}

// validateSubdomainInput validates the subdomain as typed.
func validateSubdomainInput(s string) error {
	if s == "" {
		return nil
	}
	if !isValidDNSLabel(s) {
		return fmt.Errorf("must be a single DNS label (no dots)")
	}
	return nil
}
