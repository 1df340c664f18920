package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/devplane/devplane/internal/config"
	"github.com/devplane/devplane/internal/platform/s3"
)

// stateBucketClient is the object storage surface bootstrap and doctor use.
type stateBucketClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	EnsureStateBucket(ctx context.Context, bucketName string) (bool, error)
	EnableVersioning(ctx context.Context, bucketName string) error
	VersioningEnabled(ctx context.Context, bucketName string) (bool, error)
}

// Factory function variables for bootstrap - can be replaced in tests.
var (
	// newStateBucketClient builds the object storage client for a region.
	newStateBucketClient = func(region config.Region, accessKey, secretKey string) (stateBucketClient, error) {
		return s3.NewClient(region.S3Endpoint(), string(region), accessKey, secretKey)
	}

	// lookupEnv reads credentials from the environment.
	lookupEnv = os.Getenv
)

// scalewayCredentials reads the API credentials from the environment.
func scalewayCredentials() (accessKey, secretKey string, err error) {
	accessKey = lookupEnv("SCW_ACCESS_KEY")
	secretKey = lookupEnv("SCW_SECRET_KEY")
	if accessKey == "" || secretKey == "" {
		return "", "", fmt.Errorf("SCW_ACCESS_KEY and SCW_SECRET_KEY must be set")
	}
	return accessKey, secretKey, nil
}

// Bootstrap creates the terraform state bucket and enables object
// versioning on it. Both steps are idempotent, so re-running against an
// already bootstrapped environment changes nothing.
func Bootstrap(ctx context.Context, configPath string, dryRun bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	effective, err := config.Resolve(cfg)
	if err != nil {
		return err
	}
	names := effective.DerivedNames()

	if dryRun {
		fmt.Println("Dry run, no changes will be made.")
		fmt.Println()
		fmt.Printf("Would ensure bucket %s exists at %s\n", names.StateBucketName, effective.Region.S3Endpoint())
		fmt.Println("Would enable object versioning on it")
		return nil
	}

	accessKey, secretKey, err := scalewayCredentials()
	if err != nil {
		return err
	}

	client, err := newStateBucketClient(effective.Region, accessKey, secretKey)
	if err != nil {
		return err
	}

	created, err := client.EnsureStateBucket(ctx, names.StateBucketName)
	if err != nil {
		return err
	}
	if created {
		fmt.Printf("Created state bucket %s in %s\n", names.StateBucketName, effective.Region)
	} else {
		fmt.Printf("State bucket %s already exists\n", names.StateBucketName)
	}

	if err := client.EnableVersioning(ctx, names.StateBucketName); err != nil {
		return err
	}
	fmt.Println("Object versioning enabled")

	fmt.Println()
	fmt.Println("Terraform backend settings:")
	fmt.Printf("  bucket   = %q\n", names.StateBucketName)
	fmt.Printf("  region   = %q\n", string(effective.Region))
	fmt.Printf("  endpoint = %q\n", effective.Region.S3Endpoint())

	return nil
}
