package main

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/ddd-shop-go/config"
	"github.com/AntonStoeckl/ddd-shop-go/domain/checkout"
	"github.com/AntonStoeckl/ddd-shop-go/domain/customer"
	"github.com/AntonStoeckl/ddd-shop-go/domain/product"
	"github.com/AntonStoeckl/ddd-shop-go/infrastructure/eventjournal"
	"github.com/AntonStoeckl/ddd-shop-go/infrastructure/gormdb"
	"github.com/AntonStoeckl/ddd-shop-go/infrastructure/postgres"
	"github.com/AntonStoeckl/ddd-shop-go/observability"
)

const journalTable = "domain_events"

// repositories bundles the ports of one adapter with the journal sharing its connection.
type repositories struct {
	customers customer.Repository
	products  product.Repository
	orders    checkout.Repository
	journal   *eventjournal.Journal

	createTables func(ctx context.Context) error
	closeDB      func()
}

func (r *repositories) migrate(ctx context.Context) error {
	if err := r.createTables(ctx); err != nil {
		return err
	}

	return r.journal.CreateSchema(ctx)
}

func (r *repositories) close() {
	r.closeDB()
}

func openRepositories(ctx context.Context, cfg config.Config, logger *observability.SlogBridgeLogger) (*repositories, error) {
	journalOptions := []eventjournal.Option{
		eventjournal.WithLogger(logger),
		eventjournal.WithTableName(cfg.TablePrefix + journalTable),
	}

	if cfg.Adapter == config.AdapterGorm {
		return openGorm(ctx, cfg, logger, journalOptions)
	}

	storeOptions := []postgres.Option{postgres.WithLogger(logger)}
	if cfg.TablePrefix != "" {
		storeOptions = append(storeOptions, postgres.WithTablePrefix(cfg.TablePrefix))
	}

	var store *postgres.Store
	var journal *eventjournal.Journal
	var closeDB func()
	var err error

	switch cfg.Adapter {
	case config.AdapterPGX:
		pool, openErr := config.OpenPGXPool(ctx, cfg)
		if openErr != nil {
			return nil, openErr
		}

		closeDB = pool.Close
		store, err = postgres.NewStoreFromPGXPool(pool, storeOptions...)
		if err == nil {
			journal, err = eventjournal.NewJournalFromPGXPool(pool, journalOptions...)
		}

	case config.AdapterSQL:
		db, openErr := config.OpenSQLDB(ctx, cfg)
		if openErr != nil {
			return nil, openErr
		}

		closeDB = func() { _ = db.Close() }
		store, err = postgres.NewStoreFromSQLDB(db, storeOptions...)
		if err == nil {
			journal, err = eventjournal.NewJournalFromSQLDB(db, journalOptions...)
		}

	case config.AdapterSQLX:
		db, openErr := config.OpenSQLX(ctx, cfg)
		if openErr != nil {
			return nil, openErr
		}

		closeDB = func() { _ = db.Close() }
		store, err = postgres.NewStoreFromSQLX(db, storeOptions...)
		if err == nil {
			journal, err = eventjournal.NewJournalFromSQLX(db, journalOptions...)
		}

	default:
		return nil, errors.Join(config.ErrUnknownAdapter, errors.New(cfg.Adapter))
	}

	if err != nil {
		closeDB()
		return nil, err
	}

	return &repositories{
		customers:    store.Customers(),
		products:     store.Products(),
		orders:       store.Orders(),
		journal:      journal,
		createTables: store.CreateSchema,
		closeDB:      closeDB,
	}, nil
}

func openGorm(
	ctx context.Context,
	cfg config.Config,
	logger *observability.SlogBridgeLogger,
	journalOptions []eventjournal.Option,
) (*repositories, error) {

	db, err := gormdb.Connect(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	closeDB := func() { _ = gormdb.Close(db) }

	store, err := gormdb.NewStore(db, gormdb.WithLogger(logger))
	if err != nil {
		closeDB()
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		closeDB()
		return nil, err
	}

	journal, err := eventjournal.NewJournalFromSQLDB(sqlDB, journalOptions...)
	if err != nil {
		closeDB()
		return nil, err
	}

	return &repositories{
		customers:    store.Customers(),
		products:     store.Products(),
		orders:       store.Orders(),
		journal:      journal,
		createTables: store.AutoMigrate,
		closeDB:      closeDB,
	}, nil
}
