package checkout

import (
	"slices"
	"strings"
)

// Order is the aggregate root of the checkout aggregate.
//
// The total is kept in sync with the items. OrderItems handed to an Order
// should not be changed through other references afterwards, or the cached
// total goes stale until the next AddItems.
type Order struct {
	id         string
	customerID string
	items      []*OrderItem
	total      float64
}

// NewOrder creates a validated Order.
func NewOrder(id string, customerID string, items []*OrderItem) (*Order, error) {
	o := &Order{
		id:         id,
		customerID: customerID,
		items:      slices.Clone(items),
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	o.total = o.calculateTotal()

	return o, nil
}

// Validate checks the invariants of the order.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.id) == "" {
		return ErrIDRequired
	}

	if strings.TrimSpace(o.customerID) == "" {
		return ErrCustomerIDRequired
	}

	return validateItems(o.items)
}

func validateItems(items []*OrderItem) error {
	if len(items) == 0 {
		return ErrItemsRequired
	}

	for _, item := range items {
		if item == nil {
			return ErrItemsRequired
		}

		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ID returns the order ID.
func (o *Order) ID() string {
	return o.id
}

// CustomerID returns the ID of the ordering customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the item list.
func (o *Order) Items() []*OrderItem {
	return slices.Clone(o.items)
}

// Total returns the sum of all item totals.
func (o *Order) Total() float64 {
	return o.total
}

// ChangeCustomerID moves the order to another customer.
func (o *Order) ChangeCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return ErrCustomerIDRequired
	}

	o.customerID = customerID
	o.total = o.calculateTotal()

	return nil
}

// AddItems appends items and recomputes the total.
func (o *Order) AddItems(items ...*OrderItem) error {
	if err := validateItems(items); err != nil {
		return err
	}

	o.items = append(o.items, items...)
	o.total = o.calculateTotal()

	return nil
}

func (o *Order) calculateTotal() float64 {
	total := 0.0

	for _, item := range o.items {
		total += item.Total()
	}

	return total
}
