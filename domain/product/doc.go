// Package product holds the product entities, the factory choosing between them
// and the domain service that reprices a batch of products.
package product
