package checkout

import "strings"

// OrderItem is one line of an Order.
type OrderItem struct {
	id        string
	productID string
	name      string
	price     float64
	quantity  int
}

// NewOrderItem creates a validated OrderItem.
func NewOrderItem(id string, name string, price float64, productID string, quantity int) (*OrderItem, error) {
	item := &OrderItem{
		id:        id,
		productID: productID,
		name:      name,
		price:     price,
		quantity:  quantity,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks the invariants of the item.
func (i *OrderItem) Validate() error {
	return validateItem(i.id, i.name, i.price, i.quantity)
}

func validateItem(id string, name string, price float64, quantity int) error {
	switch {
	case strings.TrimSpace(id) == "":
		return ErrIDRequired
	case strings.TrimSpace(name) == "":
		return ErrNameRequired
	case price < 0:
		return ErrPriceNegative
	case quantity <= 0:
		return ErrQuantityNotPositive
	}

	return nil
}

// ID returns the item ID.
func (i *OrderItem) ID() string {
	return i.id
}

// ProductID returns the ID of the ordered product.
func (i *OrderItem) ProductID() string {
	return i.productID
}

// Name returns the product name captured at ordering time.
func (i *OrderItem) Name() string {
	return i.name
}

// Price returns the unit price.
func (i *OrderItem) Price() float64 {
	return i.price
}

// Quantity returns the ordered quantity.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// ChangePrice sets the unit price, a negative price is rejected.
func (i *OrderItem) ChangePrice(price float64) error {
	if err := validateItem(i.id, i.name, price, i.quantity); err != nil {
		return err
	}

	i.price = price

	return nil
}

// ChangeQuantity sets the quantity, it must stay above zero.
func (i *OrderItem) ChangeQuantity(quantity int) error {
	if err := validateItem(i.id, i.name, i.price, quantity); err != nil {
		return err
	}

	i.quantity = quantity

	return nil
}

// Total returns price times quantity.
func (i *OrderItem) Total() float64 {
	return i.price * float64(i.quantity)
}
