package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/imamik/roleprobe/internal/target"
)

// DefaultRegion is used when neither options nor the environment set one.
const DefaultRegion = "us-east-1"

// Options configures NewClient.
type Options struct {
	// Credentials is required.
	Credentials aws.CredentialsProvider
	// Region overrides the region from the environment or shared config.
	Region string
	// Endpoint points the client at an S3-compatible service.
	Endpoint string
	// UsePathStyle addresses buckets as a path segment instead of a subdomain.
	UsePathStyle bool
}

// Client wraps the S3 client.
type Client struct {
	s3     *s3.Client
	region string
}

// NewClient creates a new S3 client using static credentials.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if opts.Credentials == nil {
		return nil, errors.New("credentials provider is required")
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithCredentialsProvider(opts.Credentials),
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
		// one attempt per invocation; the scheduler owns retries
		o.Retryer = aws.NopRetryer{}
	})

	return &Client{s3: client, region: cfg.Region}, nil
}

// Region returns the region the client signs requests for.
func (c *Client) Region() string {
	return c.region
}

// PutObject uploads an object to a bucket.
func (c *Client) PutObject(ctx context.Context, bucketName, key string, data []byte) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s in bucket %s: %w", key, bucketName, err)
	}
	return nil
}

// PutEmptyObject writes a zero-byte object at loc.
func (c *Client) PutEmptyObject(ctx context.Context, loc target.Location) error {
	return c.PutObject(ctx, loc.Bucket, loc.Key, nil)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	// Check for typed S3 errors first
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return true
	}

	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}

	// Fall back to API error code checking for S3-compatible services
	return hasErrorCode(err, "NotFound", "NoSuchBucket", "404")
}

// IsAccessDenied reports whether the service rejected the credentials or
// the caller lacks permission on the bucket.
func IsAccessDenied(err error) bool {
	return hasErrorCode(err,
		"AccessDenied",
		"InvalidAccessKeyId",
		"SignatureDoesNotMatch",
		"ExpiredToken",
		"InvalidToken",
		"403",
	)
}

func hasErrorCode(err error, codes ...string) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	code := apiErr.ErrorCode()
	for _, c := range codes {
		if code == c {
			return true
		}
	}
	return false
}
