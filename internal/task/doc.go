// Package task implements the scheduled storage probe.
//
// A probe run takes the invocation time and a mapping of string arguments,
// picks a credentials strategy (inline keys or a JSON credentials file) and
// a target strategy (explicit bucket and key, or an s3:// URI), and writes
// one zero-byte object. Every missing argument is reported before any file
// or network access happens.
//
// The three accepted argument shapes are:
//
//	access_key, secret_key_id, access_token, s3_bucket   (key is test.txt)
//	s3bucket, s3file, credsfile
//	s3uri, credsfile
//
// The optional keys region, endpoint_url and path_style tune the storage
// client and may be combined with any shape.
package task
