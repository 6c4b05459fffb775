// Package credentials resolves the static access key triple used by the
// probe task.
//
// Credentials come either straight from the invocation arguments
// ([Direct]) or from a JSON document on disk ([File]). In both cases all
// three fields are required; [Credentials.Missing] lists the absent ones so
// the caller can fail before contacting the storage service.
package credentials
