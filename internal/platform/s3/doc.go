// Package s3 provides a client for Scaleway Object Storage (S3-compatible).
//
// It manages the terraform state bucket each environment bootstraps: bucket
// creation, versioning, and existence checks. The endpoint derives from the
// target region.
package s3
