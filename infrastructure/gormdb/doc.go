// Package gormdb implements the customer, product and order repositories with GORM.
//
// It is the ORM counterpart of the postgres package: the same tables and the same
// domain ports, but models, associations and schema migration are GORM's.
// An order's items are an association of the order model and are preloaded in item order.
package gormdb
