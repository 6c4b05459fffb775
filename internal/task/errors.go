package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/imamik/roleprobe/internal/target"
)

// ErrMissingConfiguration is matched by *MissingConfigurationError.
var ErrMissingConfiguration = errors.New("missing configuration")

// ErrInvalidArgument is matched by errors for malformed argument values.
var ErrInvalidArgument = target.ErrInvalidArgument

// MissingConfigurationError lists every required argument or credential
// field that was absent.
type MissingConfigurationError struct {
	// Source is "args" or the credentials file path.
	Source string
	Keys   []string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("missing configuration in %s: %s", e.Source, strings.Join(e.Keys, ", "))
}

// Is makes errors.Is(err, ErrMissingConfiguration) hold.
func (e *MissingConfigurationError) Is(err error) bool {
	return err == ErrMissingConfiguration
}
