// Package config defines the environment configuration model for the
// platform.
//
// The [Config] struct is the canonical representation of one environment's
// desired state: project identity, target region, access mode, and the
// sparse overrides applied on top of the per-environment defaults. The
// [Resolve] operation expands it into an [EffectiveConfig], the complete
// immutable record consumed by cost estimation, name derivation, and the
// Terraform variable renderer.
package config
