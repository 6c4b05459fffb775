package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/roleprobe/internal/target"
)

// testClient creates a Client backed by a test HTTP server.
// The handler receives real S3 XML-protocol requests.
func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := s3.New(s3.Options{
		Region:       "eu-west-1",
		BaseEndpoint: aws.String(server.URL),
		UsePathStyle: true,
		Retryer:      aws.NopRetryer{},
		Credentials:  credentials.NewStaticCredentialsProvider("test-key", "test-secret", "test-token"),
		HTTPClient: &http.Client{
			Transport: &http.Transport{},
		},
	})

	return &Client{s3: client, region: "eu-west-1"}
}

// xmlResponse is a helper to write S3-style XML responses.
func xmlResponse(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}

func errorBody(code string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<Error>
  <Code>%s</Code>
  <Message>%s</Message>
</Error>`, code, code)
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       Options
		wantRegion string
		wantErr    bool
	}{
		{
			name: "explicit region",
			opts: Options{
				Credentials: credentials.NewStaticCredentialsProvider("a", "s", "t"),
				Region:      "eu-central-1",
			},
			wantRegion: "eu-central-1",
		},
		{
			name: "custom endpoint with path style",
			opts: Options{
				Credentials:  credentials.NewStaticCredentialsProvider("a", "s", "t"),
				Region:       "fsn1",
				Endpoint:     "https://fsn1.your-objectstorage.com",
				UsePathStyle: true,
			},
			wantRegion: "fsn1",
		},
		{
			name:    "missing credentials",
			opts:    Options{Region: "eu-central-1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := NewClient(context.Background(), tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, client)
			assert.Equal(t, tt.wantRegion, client.Region())
		})
	}
}

func TestPutObject_Success(t *testing.T) {
	t.Parallel()

	var capturedBody []byte
	var capturedPath string
	var mu sync.Mutex

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			mu.Lock()
			capturedBody, _ = io.ReadAll(r.Body)
			capturedPath = r.URL.Path
			mu.Unlock()
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	client := testClient(t, handler)

	data := []byte("hello world")
	require.NoError(t, client.PutObject(context.Background(), "test-bucket", "test-key", data))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, data, capturedBody)
	assert.Equal(t, "/test-bucket/test-key", capturedPath)
}

func TestPutEmptyObject(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var requests []*http.Request
	var bodies [][]byte

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, r)
		bodies = append(bodies, body)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})

	client := testClient(t, handler)

	err := client.PutEmptyObject(context.Background(), target.Explicit("my-bucket", "a/b.txt"))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPut, requests[0].Method)
	assert.Equal(t, "/my-bucket/a/b.txt", requests[0].URL.Path)
	if decoded := requests[0].Header.Get("X-Amz-Decoded-Content-Length"); decoded != "" {
		assert.Equal(t, "0", decoded)
	} else {
		assert.Empty(t, bodies[0])
	}
	assert.Equal(t, "test-token", requests[0].Header.Get("X-Amz-Security-Token"))
}

func TestPutObject_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		code         string
		accessDenied bool
		notFound     bool
	}{
		{name: "internal error", status: http.StatusInternalServerError, code: "InternalError"},
		{name: "access denied", status: http.StatusForbidden, code: "AccessDenied", accessDenied: true},
		{name: "expired token", status: http.StatusBadRequest, code: "ExpiredToken", accessDenied: true},
		{name: "no such bucket", status: http.StatusNotFound, code: "NoSuchBucket", notFound: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				xmlResponse(w, tt.status, errorBody(tt.code))
			})

			client := testClient(t, handler)

			err := client.PutObject(context.Background(), "test-bucket", "test-key", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to put object test-key in bucket test-bucket")

			var apiErr smithy.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.code, apiErr.ErrorCode())
			assert.Equal(t, tt.accessDenied, IsAccessDenied(err))
			assert.Equal(t, tt.notFound, IsNotFound(err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "wrapped NoSuchBucket", err: fmt.Errorf("outer: %w", &s3types.NoSuchBucket{}), want: true},
		{name: "wrapped NotFound", err: fmt.Errorf("outer: %w", &s3types.NotFound{}), want: true},
		{name: "generic api error code", err: &smithy.GenericAPIError{Code: "404"}, want: true},
		{name: "wrapped generic error", err: fmt.Errorf("outer: %w", errors.New("inner error")), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}

func TestIsAccessDenied(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "invalid access key", err: &smithy.GenericAPIError{Code: "InvalidAccessKeyId"}, want: true},
		{name: "bad signature", err: fmt.Errorf("put: %w", &smithy.GenericAPIError{Code: "SignatureDoesNotMatch"}), want: true},
		{name: "other code", err: &smithy.GenericAPIError{Code: "SlowDown"}, want: false},
		{name: "plain error", err: errors.New("dial tcp: refused"), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsAccessDenied(tt.err))
		})
	}
}

func TestNewClient_SingleAttemptOnFailure(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		attempts++
		mu.Unlock()
		xmlResponse(w, http.StatusServiceUnavailable, errorBody("SlowDown"))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), Options{
		Credentials:  credentials.NewStaticCredentialsProvider("a", "s", "t"),
		Region:       "eu-west-1",
		Endpoint:     server.URL,
		UsePathStyle: true,
	})
	require.NoError(t, err)

	err = client.PutEmptyObject(context.Background(), target.Explicit("b", "k.txt"))
	require.Error(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, attempts)
}
