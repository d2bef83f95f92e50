package testdoubles

import (
	"strings"
	"sync"
)

// LoggerSpy captures Debug, Info, Warn and Error calls.
// It satisfies the Logger interfaces of the postgres, gormdb and eventjournal packages.
type LoggerSpy struct {
	records []SpyLogRecord
	mu      sync.Mutex
}

// SpyLogRecord represents a recorded log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
}

// NewLoggerSpy creates a new LoggerSpy instance.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

// Debug records a debug call.
func (s *LoggerSpy) Debug(msg string, args ...any) {
	s.record("debug", msg, args)
}

// Info records an info call.
func (s *LoggerSpy) Info(msg string, args ...any) {
	s.record("info", msg, args)
}

// Warn records a warn call.
func (s *LoggerSpy) Warn(msg string, args ...any) {
	s.record("warn", msg, args)
}

// Error records an error call.
func (s *LoggerSpy) Error(msg string, args ...any) {
	s.record("error", msg, args)
}

func (s *LoggerSpy) record(level string, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{Level: level, Message: msg, Args: args})
}

// Records returns a copy of all records with the given level.
func (s *LoggerSpy) Records(level string) []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]SpyLogRecord, 0)
	for _, r := range s.records {
		if r.Level == level {
			records = append(records, r)
		}
	}

	return records
}

// HasLog reports whether a record with the given level contains message.
func (s *LoggerSpy) HasLog(level string, message string) bool {
	for _, r := range s.Records(level) {
		if strings.Contains(r.Message, message) {
			return true
		}
	}

	return false
}

// Reset clears all records.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
}
