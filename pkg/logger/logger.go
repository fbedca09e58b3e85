// Package logger provides structured key/value logging for the please bot.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger provides the structured logging interface.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional key-value pairs.
	With(keysAndValues ...any) Logger
}

// Level represents the log level.
type Level string

const (
	// LevelDebug represents debug-level logging.
	LevelDebug Level = "DEBUG"

	// LevelInfo represents info-level logging.
	LevelInfo Level = "INFO"

	// LevelError represents error-level logging.
	LevelError Level = "ERROR"
)

// WriterLogger implements Logger writing logfmt-style lines to an io.Writer.
type WriterLogger struct {
	out     io.Writer
	mu      *sync.Mutex
	baseKVs []any
	debug   bool
}

// New creates a WriterLogger writing to stderr.
func New(debug bool) *WriterLogger {
	return NewWithWriter(os.Stderr, debug)
}

// NewWithWriter creates a WriterLogger with a custom writer.
func NewWithWriter(out io.Writer, debug bool) *WriterLogger {
	return &WriterLogger{
		out:   out,
		mu:    &sync.Mutex{},
		debug: debug,
	}
}

// Debug logs debug-level messages.
func (l *WriterLogger) Debug(msg string, keysAndValues ...any) {
	if !l.debug {
		return
	}

	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs info-level messages.
func (l *WriterLogger) Info(msg string, keysAndValues ...any) {
	l.log(LevelInfo, msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *WriterLogger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

// With returns a new logger with additional base key-value pairs.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *WriterLogger) With(keysAndValues ...any) Logger {
	newKVs := make([]any, len(l.baseKVs)+len(keysAndValues))
	copy(newKVs, l.baseKVs)
	copy(newKVs[len(l.baseKVs):], keysAndValues)

	return &WriterLogger{
		out:     l.out,
		mu:      l.mu,
		baseKVs: newKVs,
		debug:   l.debug,
	}
}

// log writes a single log line.
func (l *WriterLogger) log(level Level, msg string, keysAndValues ...any) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	var builder strings.Builder

	builder.WriteString(timestamp)
	builder.WriteString(" ")
	builder.WriteString(string(level))
	builder.WriteString(" ")
	builder.WriteString(msg)

	if len(l.baseKVs) > 0 {
		writeKeyValues(&builder, l.baseKVs)
	}

	if len(keysAndValues) > 0 {
		writeKeyValues(&builder, keysAndValues)
	}

	builder.WriteString("\n")

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = io.WriteString(l.out, builder.String())
}

// writeKeyValues formats key-value pairs and appends them to the builder.
func writeKeyValues(builder *strings.Builder, kvs []any) {
	for i := 0; i+1 < len(kvs); i += 2 {
		key := fmt.Sprintf("%v", kvs[i])
		value := fmt.Sprintf("%v", kvs[i+1])

		builder.WriteString(" ")
		builder.WriteString(key)
		builder.WriteString("=")

		if strings.ContainsAny(value, " \t\n\"") {
			builder.WriteString(quote(value))
		} else {
			builder.WriteString(value)
		}
	}
}

// quote escapes and quotes a string value.
func quote(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")

	return "\"" + s + "\""
}

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug does nothing.
func (*NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoOpLogger) Info(string, ...any) {}

// Error does nothing.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same NoOpLogger.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (n *NoOpLogger) With(...any) Logger {
	return n
}
