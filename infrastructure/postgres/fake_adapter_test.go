package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AntonStoeckl/ddd-shop-go/infrastructure/internal/adapters"
)

var errFakeDB = errors.New("fake db failure")

// fakeAdapter records every statement and serves canned rows in call order.
type fakeAdapter struct {
	statements   []string
	queryResults [][][]any
	rowsAffected int64
	failExec     bool
	txCount      int
	rolledBack   int
}

func (f *fakeAdapter) Query(_ context.Context, query string) (adapters.DBRows, error) {
	f.statements = append(f.statements, query)

	if len(f.queryResults) == 0 {
		return &fakeRows{}, nil
	}

	result := f.queryResults[0]
	f.queryResults = f.queryResults[1:]

	return &fakeRows{rows: result, current: -1}, nil
}

func (f *fakeAdapter) Exec(_ context.Context, query string) (adapters.DBResult, error) {
	f.statements = append(f.statements, query)

	if f.failExec {
		return nil, errFakeDB
	}

	return fakeResult(f.rowsAffected), nil
}

func (f *fakeAdapter) InTx(_ context.Context, fn func(tx adapters.Executor) error) error {
	f.txCount++

	if err := fn(f); err != nil {
		f.rolledBack++
		return err
	}

	return nil
}

type fakeResult int64

func (r fakeResult) RowsAffected() (int64, error) {
	return int64(r), nil
}

type fakeRows struct {
	rows    [][]any
	current int
}

func (r *fakeRows) Next() bool {
	r.current++
	return r.current < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.current]
	if len(row) != len(dest) {
		return fmt.Errorf("expected %d columns, got %d", len(row), len(dest))
	}

	for i, value := range row {
		switch d := dest[i].(type) {
		case *string:
			*d = value.(string)
		case *float64:
			*d = value.(float64)
		case *int:
			*d = value.(int)
		case *bool:
			*d = value.(bool)
		case *sql.NullString:
			if err := d.Scan(value); err != nil {
				return err
			}
		case *sql.NullInt64:
			if err := d.Scan(value); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported scan destination %T", dest[i])
		}
	}

	return nil
}

func (r *fakeRows) Err() error {
	return nil
}

func (r *fakeRows) Close() error {
	return nil
}
