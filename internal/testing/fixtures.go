package testing

import (
	"fmt"
	"strings"
	"sync"
)

// Credentials JSON fixtures.
const (
	ValidCredentialsJSON = `{
  "aws_access_key_id": "AKIATESTEXAMPLE",
  "aws_secret_access_key": "test-secret",
  "aws_session_token": "test-session-token"
}`

	NoSessionTokenJSON = `{
  "aws_access_key_id": "AKIATESTEXAMPLE",
  "aws_secret_access_key": "test-secret"
}`
)

// RecordingLogger collects formatted Info lines.
type RecordingLogger struct {
	mu    sync.Mutex
	lines []string
}

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

// Info records one formatted line.
func (l *RecordingLogger) Info(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

// Lines returns a copy of the recorded lines.
func (l *RecordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Matching returns the recorded lines containing substr.
func (l *RecordingLogger) Matching(substr string) []string {
	var out []string
	for _, line := range l.Lines() {
		if strings.Contains(line, substr) {
			out = append(out, line)
		}
	}
	return out
}
