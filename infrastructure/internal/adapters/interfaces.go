package adapters

import "context"

// Executor runs ready-built SQL strings.
type Executor interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Exec(ctx context.Context, query string) (DBResult, error)
}

// DBAdapter is an Executor that can also open transactions.
type DBAdapter interface {
	Executor

	// InTx runs fn in a transaction, which is committed when fn returns nil and rolled back otherwise.
	InTx(ctx context.Context, fn func(tx Executor) error) error
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
