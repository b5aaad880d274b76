package testdoubles

import (
	"sync"
)

// LoggerSpy is a reducer.Logger implementation that captures logging calls for testing.
type LoggerSpy struct {
	records []LogRecord
	mu      sync.Mutex
}

// LogRecord represents a recorded log call.
type LogRecord struct {
	Level   string
	Message string
	Args    []any
}

// NewLoggerSpy creates a new LoggerSpy instance.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

// Debug implements the Logger interface for testing.
func (s *LoggerSpy) Debug(msg string, args ...any) {
	s.record("debug", msg, args)
}

// Info implements the Logger interface for testing.
func (s *LoggerSpy) Info(msg string, args ...any) {
	s.record("info", msg, args)
}

// Warn implements the Logger interface for testing.
func (s *LoggerSpy) Warn(msg string, args ...any) {
	s.record("warn", msg, args)
}

// Error implements the Logger interface for testing.
func (s *LoggerSpy) Error(msg string, args ...any) {
	s.record("error", msg, args)
}

func (s *LoggerSpy) record(level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, LogRecord{
		Level:   level,
		Message: msg,
		Args:    args,
	})
}

// Reset clears all recorded log calls.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

// Records returns a copy of all log records with the given level.
func (s *LoggerSpy) Records(level string) []LogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matching []LogRecord
	for _, record := range s.records {
		if record.Level == level {
			matching = append(matching, record)
		}
	}

	return matching
}

// WarnRecords returns a copy of all warn log records.
func (s *LoggerSpy) WarnRecords() []LogRecord {
	return s.Records("warn")
}

// DebugRecords returns a copy of all debug log records.
func (s *LoggerSpy) DebugRecords() []LogRecord {
	return s.Records("debug")
}

// HasArg reports whether the record carries the key/value pair in its args.
func (r LogRecord) HasArg(key string, value any) bool {
	for i := 0; i+1 < len(r.Args); i += 2 {
		if r.Args[i] == key && r.Args[i+1] == value {
			return true
		}
	}

	return false
}
