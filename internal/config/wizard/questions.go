package wizard

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/roleprobe/internal/target"
)

var bucketNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)

// runVariantGroup prompts for the argument shape.
func runVariantGroup(ctx context.Context, result *Result) error {
	result.Variant = VariantURI // default

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Argument shape").
				Description("How the scheduler will pass credentials and the target").
				Options(
					huh.NewOption("s3uri + credentials file", VariantURI),
					huh.NewOption("bucket + object key + credentials file", VariantFile),
					huh.NewOption("inline keys + bucket (writes test.txt)", VariantDirect),
				).
				Value(&result.Variant),
		).Title("Probe"),
	).RunWithContext(ctx)
}

// runDirectGroup prompts for inline keys and the bucket.
func runDirectGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Access key ID").
				Value(&result.AccessKey).
				Validate(validateRequired),
			huh.NewInput().
				Title("Secret access key").
				EchoMode(huh.EchoModePassword).
				Value(&result.SecretKeyID).
				Validate(validateRequired),
			huh.NewInput().
				Title("Session token").
				EchoMode(huh.EchoModePassword).
				Value(&result.AccessToken).
				Validate(validateRequired),
			huh.NewInput().
				Title("Bucket").
				Description("The probe object is written as test.txt").
				Value(&result.LegacyBucket).
				Validate(validateBucket),
		).Title("Inline Credentials"),
	).RunWithContext(ctx)
}

// runFileGroup prompts for bucket, key and credentials file.
func runFileGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Bucket").
				Value(&result.Bucket).
				Validate(validateBucket),
			huh.NewInput().
				Title("Object key").
				Placeholder("probes/roleprobe.txt").
				Value(&result.File).
				Validate(validateRequired),
			credsFileInput(&result.CredsFile),
		).Title("Target"),
	).RunWithContext(ctx)
}

// runURIGroup prompts for the s3uri and credentials file.
func runURIGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target URI").
				Placeholder("s3://my-bucket/probes/roleprobe.txt").
				Value(&result.URI).
				Validate(validateS3URI),
			credsFileInput(&result.CredsFile),
		).Title("Target"),
	).RunWithContext(ctx)
}

// runClientGroup prompts for optional client settings.
func runClientGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Region (Optional)").
				Description("Leave empty to use AWS_REGION or the shared config").
				Value(&result.Region),
			huh.NewInput().
				Title("Endpoint URL (Optional)").
				Description("For S3-compatible stores such as MinIO or Hetzner Object Storage").
				Value(&result.Endpoint),
			huh.NewConfirm().
				Title("Use path-style addressing?").
				Value(&result.PathStyle),
		).Title("Client"),
	).RunWithContext(ctx)
}

func credsFileInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Credentials file").
		Description("JSON with aws_access_key_id, aws_secret_access_key, aws_session_token").
		Placeholder("/etc/roleprobe/creds.json").
		Value(value).
		Validate(validateRequired)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errValueRequired
	}
	return nil
}

func validateBucket(s string) error {
	if strings.TrimSpace(s) == "" {
		return errValueRequired
	}
	if !bucketNameRegex.MatchString(s) {
		return errBucketInvalid
	}
	return nil
}

func validateS3URI(s string) error {
	if strings.TrimSpace(s) == "" {
		return errValueRequired
	}
	_, err := target.ParseURI(s)
	return err
}
