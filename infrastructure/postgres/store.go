package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/ddd-shop-go/domain/customer"
	"github.com/AntonStoeckl/ddd-shop-go/infrastructure/internal/adapters"
)

const (
	dialectPostgres = "postgres"

	tableCustomers  = "customers"
	tableProducts   = "products"
	tableOrders     = "orders"
	tableOrderItems = "order_items"

	colID           = "id"
	colName         = "name"
	colStreet       = "street"
	colNumber       = "number"
	colZipcode      = "zipcode"
	colCity         = "city"
	colActive       = "active"
	colRewardPoints = "reward_points"
	colType         = "type"
	colPrice        = "price"
	colCustomerID   = "customer_id"
	colTotal        = "total"
	colOrderID      = "order_id"
	colProductID    = "product_id"
	colPosition     = "position"
	colQuantity     = "quantity"

	logMsgBuildQueryFailed   = "failed to build sql query"
	logMsgDBQueryFailed      = "database query execution failed"
	logMsgDBExecFailed       = "database statement execution failed"
	logMsgCloseRowsFailed    = "failed to close database rows"
	logMsgScanRowFailed      = "failed to scan database row"
	logMsgRestoreFailed      = "failed to restore aggregate from database row"
	logMsgRowsAffectedFailed = "failed to get rows affected count"
	logMsgSQLExecuted        = "executed sql for: "
	logMsgOperation          = "repository operation: "
	logMsgSaved              = "saved"
	logMsgLoaded             = "loaded"
	logMsgSchemaCreated      = "schema created"
	logMsgSchemaDropped      = "schema dropped"
	logAttrError             = "error"
	logAttrQuery             = "query"
	logAttrTable             = "table"
	logAttrID                = "id"
	logAttrCount             = "count"
	logAttrDurationMS        = "duration_ms"
	logActionQuery           = "query"
	logActionExec            = "exec"
)

var dialect = goqu.Dialect(dialectPostgres)

type tableNames struct {
	customers  string
	products   string
	orders     string
	orderItems string
}

func newTableNames(prefix string) tableNames {
	return tableNames{
		customers:  prefix + tableCustomers,
		products:   prefix + tableProducts,
		orders:     prefix + tableOrders,
		orderItems: prefix + tableOrderItems,
	}
}

// Store holds the database connection shared by the repositories.
type Store struct {
	db              adapters.DBAdapter
	tables          tableNames
	logger          Logger
	customerOptions []customer.Option
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options...)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options...)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options...)
}

func newStore(db adapters.DBAdapter, options ...Option) (*Store, error) {
	s := &Store{
		db:     db,
		tables: newTableNames(""),
	}

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

// CreateSchema creates all tables that do not exist yet.
func (s *Store) CreateSchema(ctx context.Context) error {
	err := s.db.InTx(ctx, func(tx adapters.Executor) error {
		for _, statement := range s.createTableStatements() {
			if _, err := s.exec(ctx, tx, statement); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return errors.Join(ErrCreatingSchemaFailed, err)
	}

	s.logOperation(logMsgSchemaCreated)

	return nil
}

// DropSchema drops all tables of the Store, including their data.
func (s *Store) DropSchema(ctx context.Context) error {
	statement := fmt.Sprintf(
		"DROP TABLE IF EXISTS %s, %s, %s, %s",
		s.tables.orderItems, s.tables.orders, s.tables.products, s.tables.customers,
	)

	if _, err := s.exec(ctx, s.db, statement); err != nil {
		return err
	}

	s.logOperation(logMsgSchemaDropped)

	return nil
}

// Truncate removes all rows from all tables of the Store.
func (s *Store) Truncate(ctx context.Context) error {
	statement := fmt.Sprintf(
		"TRUNCATE TABLE %s, %s, %s, %s",
		s.tables.orderItems, s.tables.orders, s.tables.products, s.tables.customers,
	)

	_, err := s.exec(ctx, s.db, statement)

	return err
}

// goqu has no DDL support, so the table definitions are plain SQL.
func (s *Store) createTableStatements() []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	street        TEXT,
	number        INTEGER,
	zipcode       TEXT,
	city          TEXT,
	active        BOOLEAN NOT NULL DEFAULT FALSE,
	reward_points INTEGER NOT NULL DEFAULT 0
)`, s.tables.customers),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id    TEXT PRIMARY KEY,
	type  TEXT NOT NULL DEFAULT 'a',
	name  TEXT NOT NULL,
	price DOUBLE PRECISION NOT NULL
)`, s.tables.products),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id          TEXT PRIMARY KEY,
	customer_id TEXT NOT NULL REFERENCES %s (id),
	total       DOUBLE PRECISION NOT NULL
)`, s.tables.orders, s.tables.customers),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id         TEXT PRIMARY KEY,
	order_id   TEXT NOT NULL REFERENCES %s (id) ON DELETE CASCADE,
	product_id TEXT NOT NULL REFERENCES %s (id),
	position   INTEGER NOT NULL,
	name       TEXT NOT NULL,
	price      DOUBLE PRECISION NOT NULL,
	quantity   INTEGER NOT NULL
)`, s.tables.orderItems, s.tables.orders, s.tables.products),
	}
}

type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

// toSQL renders a goqu dataset with interpolated values.
func (s *Store) toSQL(builder sqlBuilder) (string, error) {
	sqlQuery, _, err := builder.ToSQL()
	if err != nil {
		if s.logger != nil {
			s.logger.Error(logMsgBuildQueryFailed, logAttrError, err.Error())
		}

		return "", errors.Join(ErrBuildingQueryFailed, err)
	}

	return sqlQuery, nil
}

// query executes sqlQuery and returns the rows, which the caller must close with closeRows.
func (s *Store) query(ctx context.Context, db adapters.Executor, sqlQuery string) (adapters.DBRows, error) {
	start := time.Now()
	rows, err := db.Query(ctx, sqlQuery)
	s.logQueryWithDuration(sqlQuery, logActionQuery, time.Since(start))

	if err != nil {
		if s.logger != nil {
			s.logger.Error(logMsgDBQueryFailed, logAttrError, err.Error(), logAttrQuery, sqlQuery)
		}

		return nil, errors.Join(ErrQueryingFailed, err)
	}

	return rows, nil
}

// exec executes sqlQuery and returns the number of affected rows.
func (s *Store) exec(ctx context.Context, db adapters.Executor, sqlQuery string) (int64, error) {
	start := time.Now()
	result, err := db.Exec(ctx, sqlQuery)
	s.logQueryWithDuration(sqlQuery, logActionExec, time.Since(start))

	if err != nil {
		if s.logger != nil {
			s.logger.Error(logMsgDBExecFailed, logAttrError, err.Error(), logAttrQuery, sqlQuery)
		}

		return 0, errors.Join(ErrExecutingFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		if s.logger != nil {
			s.logger.Error(logMsgRowsAffectedFailed, logAttrError, err.Error())
		}

		return 0, errors.Join(ErrGettingRowsAffectedFailed, err)
	}

	return rowsAffected, nil
}

// closeRows closes database rows and logs any errors.
func (s *Store) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if s.logger != nil {
			s.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

func (s *Store) scanFailed(err error) error {
	if s.logger != nil {
		s.logger.Error(logMsgScanRowFailed, logAttrError, err.Error())
	}

	return errors.Join(ErrScanningDBRowFailed, err)
}

func (s *Store) restoreFailed(table string, id string, err error) error {
	if s.logger != nil {
		s.logger.Error(logMsgRestoreFailed, logAttrError, err.Error(), logAttrTable, table, logAttrID, id)
	}

	return errors.Join(ErrRestoringAggregateFailed, err)
}

// logQueryWithDuration logs SQL statements with execution time at debug level if the logger is configured.
func (s *Store) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (s *Store) logOperation(action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
