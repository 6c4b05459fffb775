package logging

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Logger is the informational logger injected into the probe task.
type Logger interface {
	Info(format string, v ...interface{})
}

// FieldLogger is a Logger that can carry context fields.
type FieldLogger interface {
	Logger
	WithFields(fields map[string]string) FieldLogger
}

// StdLogger writes through a standard library *log.Logger.
type StdLogger struct {
	out    *log.Logger
	fields map[string]string
}

// NewStdLogger creates a StdLogger. A nil logger uses the log package default.
func NewStdLogger(l *log.Logger) *StdLogger {
	if l == nil {
		l = log.Default()
	}
	return &StdLogger{out: l, fields: map[string]string{}}
}

// Info implements Logger.
func (s *StdLogger) Info(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	if len(s.fields) > 0 {
		msg = fmt.Sprintf("%s (%s)", msg, formatFields(s.fields))
	}
	s.out.Print(msg)
}

// WithFields implements FieldLogger.
func (s *StdLogger) WithFields(fields map[string]string) FieldLogger {
	return &StdLogger{out: s.out, fields: mergeFields(s.fields, fields)}
}

// LogrLogger forwards Info calls to a logr.Logger.
type LogrLogger struct {
	logger logr.Logger
}

// NewLogrLogger wraps a logr.Logger.
func NewLogrLogger(l logr.Logger) *LogrLogger {
	return &LogrLogger{logger: l}
}

// NewJSONLogger returns a LogrLogger emitting one JSON object per line to w.
func NewJSONLogger(w io.Writer, name string) *LogrLogger {
	sink := funcr.NewJSON(func(obj string) {
		_, _ = fmt.Fprintln(w, obj)
	}, funcr.Options{LogTimestamp: true})
	return NewLogrLogger(sink.WithName(name))
}

// Info implements Logger.
func (l *LogrLogger) Info(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// WithFields implements FieldLogger. Fields become logr key/value pairs.
func (l *LogrLogger) WithFields(fields map[string]string) FieldLogger {
	keys := sortedKeys(fields)
	kv := make([]interface{}, 0, len(keys)*2)
	for _, k := range keys {
		kv = append(kv, k, fields[k])
	}
	return &LogrLogger{logger: l.logger.WithValues(kv...)}
}

// Discard returns a Logger that drops every message.
func Discard() Logger {
	return NewLogrLogger(logr.Discard())
}

// WithFields adds fields when the logger supports them and returns it
// unchanged otherwise.
func WithFields(l Logger, fields map[string]string) Logger {
	if fl, ok := l.(FieldLogger); ok {
		return fl.WithFields(fields)
	}
	return l
}

func mergeFields(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

func formatFields(fields map[string]string) string {
	parts := make([]string, 0, len(fields))
	for _, k := range sortedKeys(fields) {
		parts = append(parts, fmt.Sprintf("%s=%s", k, fields[k]))
	}
	return strings.Join(parts, ", ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
