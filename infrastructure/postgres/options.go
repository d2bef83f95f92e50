package postgres

import (
	"regexp"

	"github.com/AntonStoeckl/ddd-shop-go/domain/customer"
)

var validTablePrefix = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Logger interface for SQL query logging, operational messages, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option defines a functional option for configuring a Store.
type Option func(*Store) error

// WithLogger sets the logger for the Store.
//
// Debug level: SQL statements with execution timing
// Info level: saved and loaded aggregate counts
// Warn level: non-critical issues like failing to close rows
// Error level: failures that are returned to the caller.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithTablePrefix prefixes every table name, e.g. "demo_" yields demo_customers.
func WithTablePrefix(prefix string) Option {
	return func(s *Store) error {
		if !validTablePrefix.MatchString(prefix) {
			return ErrInvalidTablePrefix
		}

		s.tables = newTableNames(prefix)

		return nil
	}
}

// WithCustomerOptions sets the options applied to every customer restored from the database,
// typically customer.WithEventDispatcher.
func WithCustomerOptions(options ...customer.Option) Option {
	return func(s *Store) error {
		s.customerOptions = options
		return nil
	}
}
