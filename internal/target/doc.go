// Package target resolves the storage location a probe object is written to.
//
// A [Location] is either given explicitly as a bucket and key or parsed from
// an s3:// URI with [ParseURI]. The legacy inline variant always writes to
// [DefaultKey].
package target
