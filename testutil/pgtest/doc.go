// Package pgtest connects tests to the PostgreSQL database configured through SHOP_DSN and SHOP_ADAPTER.
//
// Tests are skipped when the database can't be reached, so the unit tests of a
// package still run without Docker. The adapter (pgx, sql, sqlx) decides which
// connection type backs the Store and the Journal; "gorm" falls back to pgx here.
package pgtest
