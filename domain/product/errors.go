package product

import "errors"

var ErrIDRequired = errors.New("ID is required")
var ErrNameRequired = errors.New("name is required")
var ErrPriceNegative = errors.New("price must be greater than zero")
var ErrInvalidProductType = errors.New("invalid product type")
var ErrNotFound = errors.New("product not found")
