package config

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrOpeningDatabaseFailed = errors.New("opening database connection failed")
var ErrPingingDatabaseFailed = errors.New("pinging database failed")

// PGXPoolConfig creates a pgxpool.Config from cfg.
func PGXPoolConfig(cfg Config) (*pgxpool.Config, error) {
	dbConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, errors.Join(ErrOpeningDatabaseFailed, err)
	}

	dbConfig.MaxConns = cfg.Pool.MaxConns
	dbConfig.MinConns = cfg.Pool.MinConns
	dbConfig.MaxConnLifetime = cfg.Pool.MaxConnLifetime
	dbConfig.MaxConnIdleTime = cfg.Pool.MaxConnIdleTime
	dbConfig.HealthCheckPeriod = cfg.Pool.HealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = cfg.Pool.ConnectTimeout

	return dbConfig, nil
}

// OpenPGXPool creates a pgx pool and pings the database once.
func OpenPGXPool(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	dbConfig, err := PGXPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, errors.Join(ErrOpeningDatabaseFailed, err)
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, errors.Join(ErrPingingDatabaseFailed, pingErr)
	}

	return pool, nil
}
