package config

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvArgPrefix marks environment variables that supply invocation arguments.
// ROLEPROBE_ARG_S3URI=s3://b/k becomes the argument s3uri.
const EnvArgPrefix = "ROLEPROBE_ARG_"

// LoadArgs reads an argument mapping from a YAML or JSON file.
//
// Scalar values are coerced to strings; null values are treated as absent.
// Nested maps and lists are rejected.
func LoadArgs(path string) (map[string]string, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read args file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal args file: %w", err)
	}

	return Coerce(raw)
}

// Coerce converts a raw mapping into string arguments.
func Coerce(raw map[string]interface{}) (map[string]string, error) {
	args := make(map[string]string, len(raw))
	for key, v := range raw {
		if v == nil {
			continue
		}
		s, err := coerceValue(v)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", key, err)
		}
		args[key] = s
	}
	return args, nil
}

func coerceValue(v interface{}) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float64:
		return formatFloat(val), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

// formatFloat keeps a trailing ".0" on whole numbers so 1.0 stays "1.0".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// ParseArgFlags parses repeated key=value flag values.
func ParseArgFlags(pairs []string) (map[string]string, error) {
	args := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q: expected key=value", pair)
		}
		args[key] = value
	}
	return args, nil
}

// ArgsFromEnv collects arguments from ROLEPROBE_ARG_* variables in environ.
// Keys are lowercased.
func ArgsFromEnv(environ []string) map[string]string {
	args := map[string]string{}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvArgPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, EnvArgPrefix))
		if key != "" {
			args[key] = value
		}
	}
	return args
}

// MergeArgs overlays the given mappings in order; later ones win.
func MergeArgs(layers ...map[string]string) map[string]string {
	merged := map[string]string{}
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// SortedKeys returns the keys of args in lexical order.
func SortedKeys(args map[string]string) []string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
