package task

import (
	"github.com/imamik/roleprobe/internal/credentials"
	"github.com/imamik/roleprobe/internal/logging"
	"github.com/imamik/roleprobe/internal/target"
)

// Variant names the argument shape a run was resolved from.
type Variant string

// Variants.
const (
	VariantDirect Variant = "direct"
	VariantFile   Variant = "file"
	VariantURI    Variant = "uri"
)

// Plan is the resolved strategy pair for one invocation.
type Plan struct {
	Variant     Variant
	Credentials credentials.Source
	Target      target.Source
	Client      ClientOptions
}

type targetKind int

const (
	targetLegacy targetKind = iota
	targetExplicit
	targetURI
)

// Resolve selects the credentials and target strategies from args.
//
// Every required key that is absent is logged and the whole set is returned
// as a single *MissingConfigurationError. No file is read here.
func Resolve(args Arguments, logger logging.Logger) (*Plan, error) {
	kind := targetLegacy
	switch {
	case args.Has(KeyURI):
		kind = targetURI
	case args.HasAny(KeyBucket, KeyFile):
		kind = targetExplicit
	}

	fileCreds := args.Has(KeyCredsFile)
	if !fileCreds && !args.HasAny(KeyAccessKey, KeySecretKeyID, KeyAccessToken) {
		fileCreds = kind != targetLegacy
	}

	var required []string
	if fileCreds {
		required = append(required, KeyCredsFile)
	} else {
		required = append(required, KeyAccessKey, KeySecretKeyID, KeyAccessToken)
	}
	switch kind {
	case targetURI:
		required = append(required, KeyURI)
	case targetExplicit:
		required = append(required, KeyBucket, KeyFile)
	default:
		required = append(required, KeyLegacyBucket)
	}

	var missing []string
	for _, key := range required {
		if !args.Has(key) {
			logger.Info("%s not supplied in args", key)
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingConfigurationError{Source: "args", Keys: missing}
	}

	clientOpts, err := clientOptions(args)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Client: clientOpts}

	if fileCreds {
		plan.Credentials = credentials.File{Path: args.Value(KeyCredsFile)}
	} else {
		plan.Credentials = credentials.Direct{Credentials: credentials.Credentials{
			AccessKeyID:     args.Value(KeyAccessKey),
			SecretAccessKey: args.Value(KeySecretKeyID),
			SessionToken:    args.Value(KeyAccessToken),
		}}
	}

	switch kind {
	case targetURI:
		plan.Target = target.URI{Raw: args.Value(KeyURI)}
	case targetExplicit:
		plan.Target = target.Fixed{Location: target.Explicit(args.Value(KeyBucket), args.Value(KeyFile))}
	default:
		plan.Target = target.Fixed{Location: target.Explicit(args.Value(KeyLegacyBucket), target.DefaultKey)}
	}

	switch {
	case kind == targetURI:
		plan.Variant = VariantURI
	case fileCreds:
		plan.Variant = VariantFile
	default:
		plan.Variant = VariantDirect
	}

	return plan, nil
}
