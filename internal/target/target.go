package target

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme is the only URI scheme accepted by ParseURI.
const Scheme = "s3"

// DefaultKey is the object key used when only a bucket is supplied.
const DefaultKey = "test.txt"

// ErrInvalidArgument is matched by every error returned from ParseURI.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a target URI that cannot be used.
type InvalidArgumentError struct {
	URI    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: s3uri %q: %s", e.URI, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidArgument) hold.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Location identifies an object within a bucket.
type Location struct {
	Bucket string
	Key    string
}

// Explicit returns a Location for an already known bucket and key.
func Explicit(bucket, key string) Location {
	return Location{Bucket: bucket, Key: key}
}

// String renders the location as an s3:// URI.
func (l Location) String() string {
	return fmt.Sprintf("%s://%s/%s", Scheme, l.Bucket, l.Key)
}

// ParseURI splits an s3://bucket/key URI into a Location.
//
// The key is the raw path with leading slashes stripped. It is never
// percent-decoded, so s3://b/a%20b.txt names the object "a%20b.txt".
// Any query or fragment is dropped. The scheme is matched case-insensitively.
func ParseURI(raw string) (Location, error) {
	scheme, rest := splitScheme(raw)
	if scheme != Scheme {
		return Location{}, &InvalidArgumentError{
			URI:    raw,
			Reason: fmt.Sprintf("scheme must be %q, got %q", Scheme, scheme),
		}
	}

	rest, _, _ = strings.Cut(rest, "#")
	rest, _, _ = strings.Cut(rest, "?")

	var loc Location
	if authority, ok := strings.CutPrefix(rest, "//"); ok {
		bucket, path, _ := strings.Cut(authority, "/")
		loc = Location{Bucket: bucket, Key: strings.TrimLeft(path, "/")}
	}
	if loc.Bucket == "" {
		return Location{}, &InvalidArgumentError{URI: raw, Reason: "bucket is empty"}
	}
	if loc.Key == "" {
		return Location{}, &InvalidArgumentError{URI: raw, Reason: "key is empty"}
	}

	return loc, nil
}

// splitScheme returns the lowercased scheme and the remainder after the
// colon. A string without a valid scheme yields an empty scheme.
func splitScheme(raw string) (string, string) {
	for i, c := range raw {
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return "", raw
			}
		case c == ':':
			if i == 0 {
				return "", raw
			}
			return strings.ToLower(raw[:i]), raw[i+1:]
		default:
			return "", raw
		}
	}
	return "", raw
}
