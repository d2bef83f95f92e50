package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AntonStoeckl/ddd-shop-go/domain/customer"
)

const (
	logMsgGormLog         = "gorm: "
	logMsgOperation       = "repository operation: "
	logMsgSaved           = "saved"
	logMsgLoaded          = "loaded"
	logMsgSchemaMigrated  = "schema migrated"
	logMsgSchemaDropped   = "schema dropped"
	logMsgOperationFailed = "repository operation failed"
	logMsgRestoreFailed   = "failed to restore aggregate from database row"
	logAttrMessage        = "message"
	logAttrError          = "error"
	logAttrModel          = "model"
	logAttrID             = "id"
	logAttrCount          = "count"
)

// Logger interface for operational messages and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option defines a functional option for configuring a Store.
type Option func(*Store) error

// WithLogger sets the logger for repository operations, SQL logging is configured in Connect.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithCustomerOptions sets the options applied to every customer restored from the database.
func WithCustomerOptions(options ...customer.Option) Option {
	return func(s *Store) error {
		s.customerOptions = options
		return nil
	}
}

// Store holds the GORM connection shared by the repositories.
type Store struct {
	db              *gorm.DB
	logger          Logger
	customerOptions []customer.Option
}

// NewStore creates a Store on a connection opened with Connect.
func NewStore(db *gorm.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	s := &Store{db: db}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Customers returns the customer repository.
func (s *Store) Customers() *CustomerRepository {
	return &CustomerRepository{store: s}
}

// Products returns the product repository.
func (s *Store) Products() *ProductRepository {
	return &ProductRepository{store: s}
}

// Orders returns the order repository.
func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{store: s}
}

// AutoMigrate creates or updates the tables of all models.
func (s *Store) AutoMigrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(allModels()...); err != nil {
		return s.failed(ErrMigratingFailed, "", err)
	}

	s.logOperation(logMsgSchemaMigrated)

	return nil
}

// DropSchema drops the tables of all models, including their data.
func (s *Store) DropSchema(ctx context.Context) error {
	models := allModels()

	// dependent tables first
	for i := len(models) - 1; i >= 0; i-- {
		if err := s.db.WithContext(ctx).Migrator().DropTable(models[i]); err != nil {
			return s.failed(ErrMigratingFailed, "", err)
		}
	}

	s.logOperation(logMsgSchemaDropped)

	return nil
}

func (s *Store) failed(outer error, id string, err error) error {
	if s.logger != nil {
		s.logger.Error(logMsgOperationFailed, logAttrError, err.Error(), logAttrID, id)
	}

	return errors.Join(outer, err)
}

func (s *Store) restoreFailed(model string, id string, err error) error {
	if s.logger != nil {
		s.logger.Error(logMsgRestoreFailed, logAttrError, err.Error(), logAttrModel, model, logAttrID, id)
	}

	return errors.Join(ErrRestoringAggregateFailed, err)
}

func (s *Store) logOperation(action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}
