package config

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// OpenSQLX opens a configured *sqlx.DB on the lib/pq driver and pings it once.
func OpenSQLX(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Join(ErrOpeningDatabaseFailed, err)
	}

	ApplySQLPool(db.DB, cfg.Pool)

	if pingErr := ping(ctx, db, cfg.Pool); pingErr != nil {
		_ = db.Close()
		return nil, pingErr
	}

	return db, nil
}
