package s3

import (
	"context"
	stderrors "errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/devplane/devplane/internal/errors"
)

// Client wraps the S3 client for Scaleway Object Storage.
type Client struct {
	s3     *s3.Client
	region string
}

// NewClient creates a new S3 client for Scaleway Object Storage.
func NewClient(endpoint, region, accessKey, secretKey string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, errors.Wrap(errors.TypeStorage, "failed to load S3 config", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = false // Scaleway uses virtual-hosted style
	})

	return &Client{s3: client, region: region}, nil
}

// EnsureStateBucket creates the terraform state bucket if it does not exist.
// It reports whether the bucket was newly created. Re-running against a
// bucket this account already owns succeeds without creating anything; a
// bucket owned by another account is a name collision, since bucket names
// are global per region.
func (c *Client) EnsureStateBucket(ctx context.Context, bucketName string) (bool, error) {
	_, err := c.s3.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucketName),
		CreateBucketConfiguration: &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(c.region),
		},
	})
	if err != nil {
		switch {
		case isBucketAlreadyOwnedByYou(err):
			return false, nil
		case isBucketOwnedByAnother(err):
			return false, errors.NameCollision("state bucket", bucketName)
		default:
			return false, errors.Wrapf(errors.TypeStorage, err, "failed to create bucket %s", bucketName)
		}
	}
	return true, nil
}

// EnableVersioning turns on object versioning for the bucket so terraform
// state history survives overwrites.
func (c *Client) EnableVersioning(ctx context.Context, bucketName string) error {
	_, err := c.s3.PutBucketVersioning(ctx, &s3.PutBucketVersioningInput{
		Bucket: aws.String(bucketName),
		VersioningConfiguration: &types.VersioningConfiguration{
			Status: types.BucketVersioningStatusEnabled,
		},
	})
	if err != nil {
		return errors.Wrapf(errors.TypeStorage, err, "failed to enable versioning on bucket %s", bucketName)
	}
	return nil
}

// VersioningEnabled reports whether object versioning is active on the bucket.
func (c *Client) VersioningEnabled(ctx context.Context, bucketName string) (bool, error) {
	result, err := c.s3.GetBucketVersioning(ctx, &s3.GetBucketVersioningInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		return false, errors.Wrapf(errors.TypeStorage, err, "failed to read versioning on bucket %s", bucketName)
	}
	return result.Status == types.BucketVersioningStatusEnabled, nil
}

// BucketExists checks if a bucket exists and is accessible.
func (c *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	_, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		if isNotFoundError(err) {
			return false, nil
		}
		return false, errors.Wrapf(errors.TypeStorage, err, "failed to check bucket %s", bucketName)
	}
	return true, nil
}

// isBucketAlreadyOwnedByYou checks if the error indicates the bucket exists
// and is owned by this account.
func isBucketAlreadyOwnedByYou(err error) bool {
	if err == nil {
		return false
	}

	var baoby *types.BucketAlreadyOwnedByYou
	if stderrors.As(err, &baoby) {
		return true
	}

	// Fall back to API error code checking for S3-compatible services
	// that may not return the exact SDK error types
	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "BucketAlreadyOwnedByYou"
	}

	return false
}

// isBucketOwnedByAnother checks if the error indicates the bucket name is
// taken by a different account.
func isBucketOwnedByAnother(err error) bool {
	if err == nil {
		return false
	}

	var bae *types.BucketAlreadyExists
	if stderrors.As(err, &bae) {
		return true
	}

	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "BucketAlreadyExists"
	}

	return false
}

// isNotFoundError checks if the error is a not found error.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	var nsb *types.NoSuchBucket
	if stderrors.As(err, &nsb) {
		return true
	}

	var nf *types.NotFound
	if stderrors.As(err, &nf) {
		return true
	}

	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchBucket" || code == "404"
	}

	return false
}
