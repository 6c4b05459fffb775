// Package config gathers the invocation arguments of a probe run.
//
// Arguments come from three layers, merged in order: a YAML args file,
// ROLEPROBE_ARG_* environment variables, and --arg key=value flags.
// Scalars in the args file are coerced to strings so the task sees a
// flat string mapping regardless of where a value came from.
package config
