// Package postgres implements the customer, product and order repositories on PostgreSQL.
//
// A Store can be created from a pgx.Pool, a sql.DB or a sqlx.DB. All SQL is
// built with goqu using the postgres dialect and executed through the internal
// adapters package, so the three connection types behave the same.
//
// Tables:
//
//	customers    id, name, street, number, zipcode, city, active, reward_points
//	products     id, type, name, price
//	orders       id, customer_id, total
//	order_items  id, order_id, product_id, position, name, price, quantity
//
// Saving an order writes the order row and its items in one transaction.
// Update replaces the stored items with the current ones.
package postgres
