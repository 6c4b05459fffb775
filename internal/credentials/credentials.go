package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
)

// Field names of the credentials JSON document.
const (
	FieldAccessKeyID     = "aws_access_key_id"
	FieldSecretAccessKey = "aws_secret_access_key"
	FieldSessionToken    = "aws_session_token"
)

// ErrNotObject is returned when the credentials document is valid JSON
// but not an object.
var ErrNotObject = errors.New("credentials document is not a JSON object")

// Credentials is an access key pair plus session token.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// Missing returns the JSON field names that are empty, in document order.
func (c Credentials) Missing() []string {
	var missing []string
	if c.AccessKeyID == "" {
		missing = append(missing, FieldAccessKeyID)
	}
	if c.SecretAccessKey == "" {
		missing = append(missing, FieldSecretAccessKey)
	}
	if c.SessionToken == "" {
		missing = append(missing, FieldSessionToken)
	}
	return missing
}

// Provider returns a static aws.CredentialsProvider for c.
func (c Credentials) Provider() aws.CredentialsProvider {
	return awscreds.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken)
}

// Source resolves credentials for a single invocation.
type Source interface {
	Resolve(ctx context.Context) (Credentials, error)
	// Describe names the source for log lines.
	Describe() string
}

// Direct is a Source backed by values passed inline.
type Direct struct {
	Credentials Credentials
}

// Resolve implements Source.
func (d Direct) Resolve(_ context.Context) (Credentials, error) {
	return d.Credentials, nil
}

// Describe implements Source.
func (d Direct) Describe() string {
	return "inline arguments"
}

// File is a Source backed by a JSON credentials document.
type File struct {
	Path string
}

// Resolve implements Source.
func (f File) Resolve(_ context.Context) (Credentials, error) {
	return LoadFile(f.Path)
}

// Describe implements Source.
func (f File) Describe() string {
	return fmt.Sprintf("credentials file %s", f.Path)
}

// LoadFile reads a credentials JSON object from path.
//
// Absent fields are left empty; use Credentials.Missing to find them.
// A field present with a non-string value is an error.
func LoadFile(path string) (Credentials, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a credentials JSON object.
func Parse(data []byte) (Credentials, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	doc, ok := raw.(map[string]interface{})
	if !ok {
		return Credentials{}, ErrNotObject
	}

	var creds Credentials
	fields := []struct {
		name string
		dst  *string
	}{
		{FieldAccessKeyID, &creds.AccessKeyID},
		{FieldSecretAccessKey, &creds.SecretAccessKey},
		{FieldSessionToken, &creds.SessionToken},
	}
	for _, f := range fields {
		v, present := doc[f.name]
		if !present || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return Credentials{}, fmt.Errorf("credentials field %s must be a string, got %T", f.name, v)
		}
		*f.dst = s
	}

	return creds, nil
}
