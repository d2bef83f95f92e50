package checkout

import "errors"

var (
	ErrIDRequired          = errors.New("ID is required")
	ErrNameRequired        = errors.New("name is required")
	ErrPriceNegative       = errors.New("price must be greater than zero")
	ErrQuantityNotPositive = errors.New("quantity must be greater than zero")
	ErrCustomerIDRequired  = errors.New("customer ID is required")
	ErrItemsRequired       = errors.New("items are required")
	ErrNoItems             = errors.New("order must have at least one item")
	ErrNotFound            = errors.New("order not found")
	ErrCustomerRequired    = errors.New("customer is required")
)
