// Package adapters lets the shop's SQL repositories run on pgx.Pool, sql.DB or sqlx.DB.
//
// All three are wrapped behind DBAdapter, which executes ready-built SQL
// strings and runs a function inside a transaction.
package adapters
