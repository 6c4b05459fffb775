package config

import (
	"os"
	"time"
)

// EnvRunTimeout bounds a whole probe run when --timeout is not given.
const EnvRunTimeout = "ROLEPROBE_TIMEOUT"

// LoadRunTimeout reads the run timeout from the environment.
// Zero means the run has no deadline of its own.
func LoadRunTimeout() time.Duration {
	return parseDuration(EnvRunTimeout, 0)
}

// parseDuration parses a duration from an environment variable.
// Returns the default value if the variable is not set or invalid.
func parseDuration(envVar string, defaultValue time.Duration) time.Duration {
	if val := os.Getenv(envVar); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d >= 0 {
			return d
		}
	}
	return defaultValue
}
