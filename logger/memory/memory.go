// SPDX-License-Identifier: MIT
// Package memory is a logger backend that records entries in memory, used by
// tests to assert on what the loader reports.
package memory

import "sync"

// Entry is one recorded log call.
type Entry struct {
	Level   string
	Message string
	Keyvals []any
}

// Logger implements logger.LoggerInstance by appending to a slice.
type Logger struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns an empty recorder.
func New() *Logger {
	return &Logger{}
}

// Entries returns a copy of everything recorded so far.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Entry(nil), l.entries...)
}

// Filter returns the recorded entries at level.
func (l *Logger) Filter(level string) []Entry {
	var out []Entry
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}

	return out
}

func (l *Logger) record(level, message string, keyvals []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{Level: level, Message: message, Keyvals: keyvals})
}

// Debug records a DEBUG entry.
func (l *Logger) Debug(message string, keyvals ...any) { l.record("debug", message, keyvals) }

// Info records an INFO entry.
func (l *Logger) Info(message string, keyvals ...any) { l.record("info", message, keyvals) }

// Warn records a WARN entry.
func (l *Logger) Warn(message string, keyvals ...any) { l.record("warn", message, keyvals) }

// Error records an ERROR entry.
func (l *Logger) Error(message string, keyvals ...any) { l.record("error", message, keyvals) }

// Fatal records a FATAL entry without exiting.
func (l *Logger) Fatal(message string, keyvals ...any) { l.record("fatal", message, keyvals) }
