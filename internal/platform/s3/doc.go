// Package s3 wraps the aws-sdk-go-v2 S3 client for the probe task.
//
// It builds a client from static credentials with optional region,
// endpoint and path-style overrides, so the probe also works against
// S3-compatible stores. Error helpers classify access and not-found
// failures using typed SDK errors first and smithy API codes second.
package s3
