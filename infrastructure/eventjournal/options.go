package eventjournal

import "regexp"

var validTableName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Logger interface for SQL query logging, operational messages and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option defines a functional option for configuring a Journal.
type Option func(*Journal) error

// WithTableName sets the journal table, default is "domain_events".
func WithTableName(tableName string) Option {
	return func(j *Journal) error {
		if !validTableName.MatchString(tableName) {
			return ErrInvalidTableName
		}

		j.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Journal.
func WithLogger(logger Logger) Option {
	return func(j *Journal) error {
		j.logger = logger
		return nil
	}
}
