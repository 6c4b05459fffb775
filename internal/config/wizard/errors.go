package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errValueRequired = errors.New("a value is required")
	errBucketInvalid = errors.New("bucket names are 3-63 lowercase letters, digits, dots or hyphens")
)
