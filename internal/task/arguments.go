package task

import (
	"fmt"
	"strconv"
	"strings"
)

// Argument keys understood by the probe.
const (
	KeyAccessKey    = "access_key"
	KeySecretKeyID  = "secret_key_id"
	KeyAccessToken  = "access_token"
	KeyLegacyBucket = "s3_bucket"

	KeyBucket    = "s3bucket"
	KeyFile      = "s3file"
	KeyCredsFile = "credsfile"

	KeyURI = "s3uri"

	KeyRegion    = "region"
	KeyEndpoint  = "endpoint_url"
	KeyPathStyle = "path_style"
)

// Arguments is the mapping passed by the scheduler for one invocation.
type Arguments map[string]string

// Has reports whether key is present with a non-blank value.
func (a Arguments) Has(key string) bool {
	return a.Value(key) != ""
}

// Value returns the value of key with surrounding whitespace removed.
func (a Arguments) Value(key string) string {
	return strings.TrimSpace(a[key])
}

// HasAny reports whether any of keys is present.
func (a Arguments) HasAny(keys ...string) bool {
	for _, k := range keys {
		if a.Has(k) {
			return true
		}
	}
	return false
}

// ClientOptions are the optional storage client settings.
type ClientOptions struct {
	Region       string
	Endpoint     string
	UsePathStyle bool
}

func clientOptions(args Arguments) (ClientOptions, error) {
	opts := ClientOptions{
		Region:   args.Value(KeyRegion),
		Endpoint: args.Value(KeyEndpoint),
	}
	if args.Has(KeyPathStyle) {
		v, err := strconv.ParseBool(args.Value(KeyPathStyle))
		if err != nil {
			return ClientOptions{}, fmt.Errorf("%w: %s must be true or false, got %q", ErrInvalidArgument, KeyPathStyle, args[KeyPathStyle])
		}
		opts.UsePathStyle = v
	}
	return opts, nil
}
