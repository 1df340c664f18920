// Package naming provides the deterministic naming functions for platform
// resources.
//
// Kubernetes-facing resources follow the pattern {project}-{env}-{type}.
// PostgreSQL identifiers replace hyphens with underscores because hyphens
// are illegal in unquoted SQL identifiers. The Terraform state bucket is
// prefixed "terraform-state" so state buckets sort together in the Object
// Storage console. Names are pure functions of their inputs; the same
// project and environment always produce the same names.
package naming
