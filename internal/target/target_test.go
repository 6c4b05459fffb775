package target

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		uri        string
		wantBucket string
		wantKey    string
	}{
		{name: "single segment key", uri: "s3://bucket/key", wantBucket: "bucket", wantKey: "key"},
		{name: "nested key", uri: "s3://my-bucket/a/b.txt", wantBucket: "my-bucket", wantKey: "a/b.txt"},
		{name: "double leading slash", uri: "s3://bucket//deep/file", wantBucket: "bucket", wantKey: "deep/file"},
		{name: "trailing slash kept", uri: "s3://bucket/prefix/", wantBucket: "bucket", wantKey: "prefix/"},
		{name: "dotted bucket", uri: "s3://logs.example.com/2024/01/probe", wantBucket: "logs.example.com", wantKey: "2024/01/probe"},
		{name: "escaped space kept", uri: "s3://b/a%20b.txt", wantBucket: "b", wantKey: "a%20b.txt"},
		{name: "escaped slash kept", uri: "s3://b/a%2Fb", wantBucket: "b", wantKey: "a%2Fb"},
		{name: "bare percent", uri: "s3://b/100%.txt", wantBucket: "b", wantKey: "100%.txt"},
		{name: "invalid escape kept", uri: "s3://bucket/%zz", wantBucket: "bucket", wantKey: "%zz"},
		{name: "uppercase scheme", uri: "S3://b/k", wantBucket: "b", wantKey: "k"},
		{name: "query dropped", uri: "s3://b/k.txt?versionId=1", wantBucket: "b", wantKey: "k.txt"},
		{name: "fragment dropped", uri: "s3://b/k.txt#part", wantBucket: "b", wantKey: "k.txt"},
		{name: "space in key", uri: "s3://b/my file.txt", wantBucket: "b", wantKey: "my file.txt"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			loc, err := ParseURI(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, loc.Bucket)
			assert.Equal(t, tt.wantKey, loc.Key)
		})
	}
}

func TestParseURI_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		uri    string
		reason string
	}{
		{name: "http scheme", uri: "http://bucket/key", reason: "scheme"},
		{name: "https scheme", uri: "https://bucket.s3.amazonaws.com/key", reason: "scheme"},
		{name: "s3a scheme", uri: "s3a://bucket/key", reason: "scheme"},
		{name: "no scheme", uri: "bucket/key", reason: "scheme"},
		{name: "empty bucket", uri: "s3:///key", reason: "bucket is empty"},
		{name: "empty key", uri: "s3://bucket/", reason: "key is empty"},
		{name: "bucket only", uri: "s3://bucket", reason: "key is empty"},
		{name: "scheme without authority", uri: "s3:bucket/key", reason: "bucket is empty"},
		{name: "query only", uri: "s3://bucket?key", reason: "key is empty"},
		{name: "empty string", uri: "", reason: "scheme"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseURI(tt.uri)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))

			var invalid *InvalidArgumentError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.uri, invalid.URI)
			assert.Contains(t, invalid.Reason, tt.reason)
		})
	}
}

func TestLocation_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "s3://b/k.txt", Explicit("b", "k.txt").String())
	assert.Equal(t, "s3://b/test.txt", Explicit("b", DefaultKey).String())
}

func TestParseURI_RoundTrip(t *testing.T) {
	t.Parallel()
	loc := Explicit("my-bucket", "a/b.txt")
	parsed, err := ParseURI(loc.String())
	require.NoError(t, err)
	assert.Equal(t, loc, parsed)
}
