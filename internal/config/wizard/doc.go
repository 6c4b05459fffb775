// Package wizard provides an interactive wizard that writes a roleprobe
// args file.
//
// It uses charmbracelet/huh for form-based input collection. RunWizard asks
// which argument shape to use, collects the matching values plus the
// optional client settings, and returns a Result. WriteArgs renders the
// result as YAML with a descriptive header.
package wizard
