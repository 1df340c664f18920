package config

import (
	stderrors "errors"
	"regexp"
	"strings"

	"github.com/devplane/devplane/internal/errors"
)

// domainRegex is compiled once at package init for domain validation.
var domainRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	region := c.Region
	if region == "" {
		region = DefaultRegion
	}
	return ValidateInputs(c.Project, c.Environment, region, c.Domain, c.Subdomain)
}

// ValidateInputs checks the identity inputs of a resolution request. All
// failures are collected and joined; each names the offending field and the
// rejected value.
func ValidateInputs(project string, env Environment, region Region, domain, subdomain string) error {
	var errs []error

	// Project: required, DNS-safe
	if project == "" {
		errs = append(errs, errors.InvalidInput("project", project, "is required"))
	} else if !isValidProjectName(project) {
		errs = append(errs, errors.InvalidInput("project", project, "must be lowercase alphanumeric and hyphens, starting with a letter"))
	}

	// Environment: must be a known tier
	if !env.IsValid() {
		errs = append(errs, errors.InvalidInput("environment", string(env), "must be one of dev, staging, prod"))
	}

	// Region: must be a known Scaleway region
	if !region.IsValid() {
		errs = append(errs, errors.InvalidInput("region", string(region), "must be one of fr-par, nl-ams, pl-waw"))
	}

	// Domain: optional; empty selects IP-based access
	if domain != "" && !isValidDomain(domain) {
		errs = append(errs, errors.InvalidInput("domain", domain, "must be a valid DNS hostname"))
	}

	// Subdomain: optional; must be a single DNS label
	if subdomain != "" && !isValidDNSLabel(subdomain) {
		errs = append(errs, errors.InvalidInput("subdomain", subdomain, "must be a single DNS label (alphanumeric and inner hyphens, max 63 chars)"))
	}

	return stderrors.Join(errs...)
}

// isValidProjectName checks if a string is usable as a project name.
// Must be lowercase, alphanumeric with hyphens, start with a letter,
// max 63 chars.
func isValidProjectName(name string) bool {
	if len(name) == 0 || len(name) > 63 {
		return false
	}
	// Must start with lowercase letter
	if name[0] < 'a' || name[0] > 'z' {
		return false
	}
	// Must end with lowercase letter or digit
	last := name[len(name)-1]
	if (last < 'a' || last > 'z') && (last < '0' || last > '9') {
		return false
	}
	// Must contain only lowercase letters, digits, and hyphens
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return false
		}
	}
	// Must not have consecutive hyphens
	if strings.Contains(name, "--") {
		return false
	}
	return true
}

// isValidDNSLabel checks if a string is a single DNS label: alphanumeric
// start and end, hyphens inside, max 63 chars, no dots.
func isValidDNSLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	if !isAlphanumeric(rune(label[0])) || !isAlphanumeric(rune(label[len(label)-1])) {
		return false
	}
	for _, c := range label {
		if !isAlphanumeric(c) && c != '-' {
			return false
		}
	}
	return true
}

func isAlphanumeric(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// isValidDomain checks if a string is a valid domain name.
func isValidDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}
	return domainRegex.MatchString(domain)
}
