// Package testing provides test doubles and fixtures shared by the probe's
// unit tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - MockUploader: testify mock for task.Uploader
//   - RecordingLogger: captures log lines for assertions
//   - WriteCredentialsFile: writes a credentials JSON fixture into a temp dir
//
// Usage:
//
//	uploader := &testing.MockUploader{}
//	uploader.On("PutEmptyObject", mock.Anything, target.Explicit("b", "k.txt")).Return(nil)
//
//	logger := testing.NewRecordingLogger()
//	path := testing.WriteCredentialsFile(t, testing.ValidCredentialsJSON)
package testing
