package pgtest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/ddd-shop-go/config"
	"github.com/AntonStoeckl/ddd-shop-go/infrastructure/eventjournal"
	"github.com/AntonStoeckl/ddd-shop-go/infrastructure/postgres"
)

const connectTimeout = 2 * time.Second

// Connection holds the one open connection of the configured adapter type.
type Connection struct {
	adapter string
	pool    *pgxpool.Pool
	db      *sql.DB
	dbx     *sqlx.DB
}

// Config returns the test configuration from defaults and environment, or skips the test when it is invalid.
func Config(t testing.TB) config.Config {
	t.Helper()

	cfg, err := config.Load("")
	if err != nil {
		t.Skipf("no usable test database configuration: %v", err)
	}

	if err = cfg.Validate(); err != nil {
		t.Skipf("no usable test database configuration: %v", err)
	}

	cfg.Pool.MinConns = 0
	cfg.Pool.MaxConns = 5
	cfg.Pool.ConnectTimeout = connectTimeout

	return cfg
}

// Connect opens a connection of the configured adapter type and closes it when the test finishes.
// The test is skipped when the database is not reachable.
func Connect(t testing.TB) *Connection {
	t.Helper()

	cfg := Config(t)
	ctx := context.Background()
	conn := &Connection{adapter: cfg.Adapter}

	var err error

	switch cfg.Adapter {
	case config.AdapterPGX, config.AdapterGorm:
		conn.pool, err = config.OpenPGXPool(ctx, cfg)
	case config.AdapterSQL:
		conn.db, err = config.OpenSQLDB(ctx, cfg)
	case config.AdapterSQLX:
		conn.dbx, err = config.OpenSQLX(ctx, cfg)
	default: // config.Validate rejects everything else
		panic(fmt.Sprintf("unsupported adapter type: %s", cfg.Adapter))
	}

	if err != nil {
		t.Skipf("test database not reachable: %v", err)
	}

	t.Cleanup(conn.close)

	return conn
}

func (c *Connection) close() {
	switch {
	case c.pool != nil:
		c.pool.Close()
	case c.db != nil:
		_ = c.db.Close() // makes no sense to handle this
	case c.dbx != nil:
		_ = c.dbx.Close() // makes no sense to handle this
	}
}

// Store creates a Store with freshly created tables, which are dropped again when the test finishes.
func (c *Connection) Store(t testing.TB, options ...postgres.Option) *postgres.Store {
	t.Helper()

	var store *postgres.Store
	var err error

	switch {
	case c.pool != nil:
		store, err = postgres.NewStoreFromPGXPool(c.pool, options...)
	case c.db != nil:
		store, err = postgres.NewStoreFromSQLDB(c.db, options...)
	default:
		store, err = postgres.NewStoreFromSQLX(c.dbx, options...)
	}

	assert.NoError(t, err, "error creating store")

	ctx := context.Background()
	assert.NoError(t, store.DropSchema(ctx), "error dropping leftover tables")
	assert.NoError(t, store.CreateSchema(ctx), "error creating tables")

	t.Cleanup(func() {
		_ = store.DropSchema(context.Background()) // the next run drops leftovers anyway
	})

	return store
}

// Journal creates a Journal with a fresh table, which is dropped again when the test finishes.
func (c *Connection) Journal(t testing.TB, options ...eventjournal.Option) *eventjournal.Journal {
	t.Helper()

	var journal *eventjournal.Journal
	var err error

	switch {
	case c.pool != nil:
		journal, err = eventjournal.NewJournalFromPGXPool(c.pool, options...)
	case c.db != nil:
		journal, err = eventjournal.NewJournalFromSQLDB(c.db, options...)
	default:
		journal, err = eventjournal.NewJournalFromSQLX(c.dbx, options...)
	}

	assert.NoError(t, err, "error creating journal")

	ctx := context.Background()
	assert.NoError(t, journal.DropSchema(ctx), "error dropping leftover table")
	assert.NoError(t, journal.CreateSchema(ctx), "error creating table")

	t.Cleanup(func() {
		_ = journal.DropSchema(context.Background()) // the next run drops leftovers anyway
	})

	return journal
}
