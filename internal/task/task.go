package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/imamik/roleprobe/internal/credentials"
	"github.com/imamik/roleprobe/internal/logging"
	"github.com/imamik/roleprobe/internal/metrics"
	"github.com/imamik/roleprobe/internal/platform/s3"
	"github.com/imamik/roleprobe/internal/target"
)

// Uploader writes the probe object.
type Uploader interface {
	PutEmptyObject(ctx context.Context, loc target.Location) error
}

// UploaderFactory builds an Uploader for one invocation's credentials.
type UploaderFactory func(ctx context.Context, creds credentials.Credentials, opts ClientOptions) (Uploader, error)

// NewS3Uploader is the UploaderFactory backed by the aws-sdk-go-v2 client.
func NewS3Uploader(ctx context.Context, creds credentials.Credentials, opts ClientOptions) (Uploader, error) {
	client, err := s3.NewClient(ctx, s3.Options{
		Credentials:  creds.Provider(),
		Region:       opts.Region,
		Endpoint:     opts.Endpoint,
		UsePathStyle: opts.UsePathStyle,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Deps are the collaborators of a run.
type Deps struct {
	// Logger receives every diagnostic line. Nil discards them.
	Logger logging.Logger
	// NewUploader defaults to NewS3Uploader.
	NewUploader UploaderFactory
	// Metrics is optional.
	Metrics *metrics.Recorder
}

// Process is the scheduler entry point. It is equivalent to Run.
func Process(ctx context.Context, invocationTime time.Time, args Arguments, deps Deps) error {
	return Run(ctx, invocationTime, args, deps)
}

// Run performs one probe: resolve arguments, read credentials, write one
// zero-byte object. Errors are returned unchanged in kind; nothing is
// retried.
func Run(ctx context.Context, now time.Time, args Arguments, deps Deps) error {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	newUploader := deps.NewUploader
	if newUploader == nil {
		newUploader = NewS3Uploader
	}
	logger = logging.WithFields(logger, map[string]string{
		"invocation": now.UTC().Format(time.RFC3339),
	})

	plan, err := Resolve(args, logger)
	if err != nil {
		var missing *MissingConfigurationError
		if errors.As(err, &missing) {
			deps.Metrics.RecordMissing(missing.Keys)
		}
		deps.Metrics.RecordRun("unresolved", resultFor(err))
		return err
	}

	variant := string(plan.Variant)
	err = execute(ctx, now, plan, logging.WithFields(logger, map[string]string{"variant": variant}), deps.Metrics, newUploader)
	deps.Metrics.RecordRun(variant, resultFor(err))
	return err
}

func execute(ctx context.Context, now time.Time, plan *Plan, logger logging.Logger, rec *metrics.Recorder, newUploader UploaderFactory) error {
	loc, err := plan.Target.Resolve()
	if err != nil {
		return err
	}
	logger.Info("Resolved target %s from %s", loc, plan.Target.Describe())

	creds, err := plan.Credentials.Resolve(ctx)
	if err != nil {
		return err
	}
	if missing := creds.Missing(); len(missing) > 0 {
		for _, field := range missing {
			logger.Info("%s not found in %s", field, plan.Credentials.Describe())
		}
		rec.RecordMissing(missing)
		return &MissingConfigurationError{Source: plan.Credentials.Describe(), Keys: missing}
	}
	logger.Info("Using credentials from %s", plan.Credentials.Describe())

	uploader, err := newUploader(ctx, creds, plan.Client)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	start := time.Now()
	err = uploader.PutEmptyObject(ctx, loc)
	rec.RecordUpload(string(plan.Variant), time.Since(start))
	if err != nil {
		switch {
		case s3.IsAccessDenied(err):
			logger.Info("Storage service rejected the credentials for %s", loc)
		case s3.IsNotFound(err):
			logger.Info("Bucket %s does not exist", loc.Bucket)
		}
		return fmt.Errorf("failed to upload empty file to %s: %w", loc, err)
	}

	rec.RecordSuccess(loc.Bucket, now)
	logger.Info("Uploaded empty file to %s", loc)
	return nil
}

func resultFor(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, ErrMissingConfiguration):
		return metrics.ResultMissingConfig
	case errors.Is(err, ErrInvalidArgument):
		return metrics.ResultInvalid
	default:
		return metrics.ResultError
	}
}
