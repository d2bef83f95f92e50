package adapters

import (
	"context"
	"database/sql"
	"errors"
)

// stdQuerier is what sql.DB, sql.Tx, sqlx.DB and sqlx.Tx have in common.
type stdQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func stdQuery(ctx context.Context, db stdQuerier, query string) (DBRows, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdRows{rows: rows}, nil
}

func stdExec(ctx context.Context, db stdQuerier, query string) (DBResult, error) {
	result, err := db.ExecContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdResult{result: result}, nil
}

// stdTx is what sql.Tx and sqlx.Tx offer to finish a transaction.
type stdTx interface {
	stdQuerier
	Commit() error
	Rollback() error
}

func runStdTx(tx stdTx, fn func(tx Executor) error) error {
	if err := fn(&stdTxExecutor{tx: tx}); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return errors.Join(err, rollbackErr)
		}

		return err
	}

	return tx.Commit()
}

// stdTxExecutor runs statements inside an open database/sql transaction.
type stdTxExecutor struct {
	tx stdQuerier
}

func (e *stdTxExecutor) Query(ctx context.Context, query string) (DBRows, error) {
	return stdQuery(ctx, e.tx, query)
}

func (e *stdTxExecutor) Exec(ctx context.Context, query string) (DBResult, error) {
	return stdExec(ctx, e.tx, query)
}

// stdRows wraps standard library sql.Rows to implement DBRows interface.
type stdRows struct {
	rows *sql.Rows
}

// Next advances to the next row.
func (s *stdRows) Next() bool {
	return s.rows.Next()
}

// Scan copies row values into provided destinations.
func (s *stdRows) Scan(dest ...any) error {
	return s.rows.Scan(dest...)
}

// Err returns the error, if any, that was encountered during iteration.
func (s *stdRows) Err() error {
	return s.rows.Err()
}

// Close closes the rows iterator.
func (s *stdRows) Close() error {
	return s.rows.Close()
}

// stdResult wraps standard library sql.Result to implement DBResult interface.
type stdResult struct {
	result sql.Result
}

// RowsAffected returns the number of rows affected by the command.
func (s *stdResult) RowsAffected() (int64, error) {
	return s.result.RowsAffected()
}
