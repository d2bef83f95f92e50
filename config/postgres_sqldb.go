package config

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/lib/pq" // postgres driver
)

// OpenSQLDB opens a configured *sql.DB on the lib/pq driver and pings it once.
func OpenSQLDB(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Join(ErrOpeningDatabaseFailed, err)
	}

	ApplySQLPool(db, cfg.Pool)

	if pingErr := ping(ctx, db, cfg.Pool); pingErr != nil {
		_ = db.Close()
		return nil, pingErr
	}

	return db, nil
}

// ApplySQLPool sets the pool settings on any database/sql handle.
func ApplySQLPool(db *sql.DB, pool PoolConfig) {
	db.SetMaxOpenConns(int(pool.MaxConns))
	db.SetMaxIdleConns(int(pool.MinConns))
	db.SetConnMaxLifetime(pool.MaxConnLifetime)
	db.SetConnMaxIdleTime(pool.MaxConnIdleTime)
}

type pinger interface {
	PingContext(ctx context.Context) error
}

func ping(ctx context.Context, db pinger, pool PoolConfig) error {
	if pool.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pool.ConnectTimeout)
		defer cancel()
	}

	if err := db.PingContext(ctx); err != nil {
		return errors.Join(ErrPingingDatabaseFailed, err)
	}

	return nil
}
