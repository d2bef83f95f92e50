package eventjournal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/ddd-shop-go/infrastructure/internal/adapters"
)

const (
	defaultTableName = "domain_events"

	colSequenceNumber = "sequence_number"
	colEventType      = "event_type"
	colOccurredAt     = "occurred_at"
	colPayload        = "payload"
	colMetadata       = "metadata"

	logMsgBuildQueryFailed = "failed to build sql query"
	logMsgDBQueryFailed    = "database query execution failed"
	logMsgDBExecFailed     = "database statement execution failed"
	logMsgCloseRowsFailed  = "failed to close database rows"
	logMsgScanRowFailed    = "failed to scan database row"
	logMsgSQLExecuted      = "executed sql for: "
	logMsgEventsAppended   = "events appended"
	logMsgEventsQueried    = "events queried"
	logAttrError           = "error"
	logAttrQuery           = "query"
	logAttrCount           = "count"
	logAttrDurationMS      = "duration_ms"
	logActionQuery         = "query"
	logActionAppend        = "append"
	logActionSchema        = "schema"
)

var dialect = goqu.Dialect("postgres")

// Journal appends StorableEvents to a table and reads them back in append order.
type Journal struct {
	db        adapters.DBAdapter
	tableName string
	logger    Logger
}

// NewJournalFromPGXPool creates a new Journal using a pgx Pool with optional configuration.
func NewJournalFromPGXPool(db *pgxpool.Pool, options ...Option) (*Journal, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewPGXAdapter(db), options...)
}

// NewJournalFromSQLDB creates a new Journal using a sql.DB with optional configuration.
func NewJournalFromSQLDB(db *sql.DB, options ...Option) (*Journal, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewSQLAdapter(db), options...)
}

// NewJournalFromSQLX creates a new Journal using a sqlx.DB with optional configuration.
func NewJournalFromSQLX(db *sqlx.DB, options ...Option) (*Journal, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewSQLXAdapter(db), options...)
}

func newJournal(db adapters.DBAdapter, options ...Option) (*Journal, error) {
	j := &Journal{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(j); err != nil {
			return nil, err
		}
	}

	return j, nil
}

// CreateSchema creates the journal table if it does not exist yet.
func (j *Journal) CreateSchema(ctx context.Context) error {
	return j.exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	sequence_number BIGSERIAL PRIMARY KEY,
	event_type      TEXT NOT NULL,
	occurred_at     TIMESTAMPTZ NOT NULL,
	payload         JSONB NOT NULL,
	metadata        JSONB NOT NULL
)`, j.tableName), logActionSchema)
}

// DropSchema drops the journal table.
func (j *Journal) DropSchema(ctx context.Context) error {
	return j.exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", j.tableName), logActionSchema)
}

// Append stores the events in one statement, in the given order.
func (j *Journal) Append(ctx context.Context, storableEvents ...StorableEvent) error {
	if len(storableEvents) == 0 {
		return nil
	}

	records := make([]any, 0, len(storableEvents))
	for _, e := range storableEvents {
		records = append(records, goqu.Record{
			colEventType:  e.EventType,
			colOccurredAt: e.OccurredAt,
			colPayload:    string(e.PayloadJSON),
			colMetadata:   string(e.MetadataJSON),
		})
	}

	sqlQuery, err := j.toSQL(dialect.Insert(j.tableName).Rows(records...))
	if err != nil {
		return err
	}

	if err = j.exec(ctx, sqlQuery, logActionAppend); err != nil {
		return err
	}

	if j.logger != nil {
		j.logger.Info(logMsgEventsAppended, logAttrCount, len(storableEvents))
	}

	return nil
}

// Query returns the events with one of the given types in append order, all events when no type is given.
func (j *Journal) Query(ctx context.Context, eventTypes ...string) (StorableEvents, error) {
	selectStmt := dialect.
		From(j.tableName).
		Select(colSequenceNumber, colEventType, colOccurredAt, colPayload, colMetadata).
		Order(goqu.I(colSequenceNumber).Asc())

	if len(eventTypes) > 0 {
		selectStmt = selectStmt.Where(goqu.C(colEventType).In(eventTypes))
	}

	sqlQuery, err := j.toSQL(selectStmt)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := j.db.Query(ctx, sqlQuery)
	j.logQueryWithDuration(sqlQuery, logActionQuery, time.Since(start))

	if err != nil {
		if j.logger != nil {
			j.logger.Error(logMsgDBQueryFailed, logAttrError, err.Error(), logAttrQuery, sqlQuery)
		}

		return nil, errors.Join(ErrQueryingFailed, err)
	}
	defer j.closeRows(rows)

	storableEvents := make(StorableEvents, 0)

	for rows.Next() {
		e := StorableEvent{}

		if scanErr := rows.Scan(&e.SequenceNumber, &e.EventType, &e.OccurredAt, &e.PayloadJSON, &e.MetadataJSON); scanErr != nil {
			if j.logger != nil {
				j.logger.Error(logMsgScanRowFailed, logAttrError, scanErr.Error())
			}

			return nil, errors.Join(ErrScanningDBRowFailed, scanErr)
		}

		storableEvents = append(storableEvents, e)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningDBRowFailed, err)
	}

	if j.logger != nil {
		j.logger.Info(logMsgEventsQueried, logAttrCount, len(storableEvents))
	}

	return storableEvents, nil
}

type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

func (j *Journal) toSQL(builder sqlBuilder) (string, error) {
	sqlQuery, _, err := builder.ToSQL()
	if err != nil {
		if j.logger != nil {
			j.logger.Error(logMsgBuildQueryFailed, logAttrError, err.Error())
		}

		return "", errors.Join(ErrBuildingQueryFailed, err)
	}

	return sqlQuery, nil
}

func (j *Journal) exec(ctx context.Context, sqlQuery string, action string) error {
	start := time.Now()
	_, err := j.db.Exec(ctx, sqlQuery)
	j.logQueryWithDuration(sqlQuery, action, time.Since(start))

	if err != nil {
		if j.logger != nil {
			j.logger.Error(logMsgDBExecFailed, logAttrError, err.Error(), logAttrQuery, sqlQuery)
		}

		return errors.Join(ErrExecutingFailed, err)
	}

	return nil
}

func (j *Journal) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if j.logger != nil {
			j.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

func (j *Journal) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if j.logger != nil {
		j.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, duration.Milliseconds(), logAttrQuery, sqlQuery)
	}
}
