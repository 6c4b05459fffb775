package wizard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/imamik/roleprobe/internal/task"
)

// Argument shapes offered by the wizard.
const (
	VariantDirect = "direct"
	VariantFile   = "file"
	VariantURI    = "uri"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	Variant string

	// direct
	AccessKey    string
	SecretKeyID  string
	AccessToken  string
	LegacyBucket string

	// file
	Bucket string
	File   string

	// file and uri
	CredsFile string

	// uri
	URI string

	// optional client settings
	Region    string
	Endpoint  string
	PathStyle bool
}

// Args converts the answers into the argument mapping of the chosen shape.
func (r *Result) Args() map[string]string {
	args := map[string]string{}
	switch r.Variant {
	case VariantDirect:
		args[task.KeyAccessKey] = r.AccessKey
		args[task.KeySecretKeyID] = r.SecretKeyID
		args[task.KeyAccessToken] = r.AccessToken
		args[task.KeyLegacyBucket] = r.LegacyBucket
	case VariantFile:
		args[task.KeyBucket] = r.Bucket
		args[task.KeyFile] = r.File
		args[task.KeyCredsFile] = r.CredsFile
	case VariantURI:
		args[task.KeyURI] = r.URI
		args[task.KeyCredsFile] = r.CredsFile
	}

	if r.Region != "" {
		args[task.KeyRegion] = r.Region
	}
	if r.Endpoint != "" {
		args[task.KeyEndpoint] = r.Endpoint
	}
	if r.PathStyle {
		args[task.KeyPathStyle] = strconv.FormatBool(r.PathStyle)
	}
	return args
}

// RunWizard runs the interactive configuration wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runVariantGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("argument shape: %w", err)
	}

	var err error
	switch result.Variant {
	case VariantDirect:
		err = runDirectGroup(ctx, result)
	case VariantFile:
		err = runFileGroup(ctx, result)
	case VariantURI:
		err = runURIGroup(ctx, result)
	default:
		err = fmt.Errorf("unknown variant %q", result.Variant)
	}
	if err != nil {
		return nil, fmt.Errorf("%s arguments: %w", result.Variant, err)
	}

	if err := runClientGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("client settings: %w", err)
	}

	return result, nil
}
