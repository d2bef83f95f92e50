package checkout

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/ddd-shop-go/domain/customer"
)

// PlaceOrder creates an order for c and credits half of the order total as reward points.
func PlaceOrder(c *customer.Customer, items []*OrderItem) (*Order, error) {
	if c == nil {
		return nil, ErrCustomerRequired
	}

	if len(items) == 0 {
		return nil, ErrNoItems
	}

	order, err := NewOrder(uuid.NewString(), c.ID(), items)
	if err != nil {
		return nil, err
	}

	c.AddRewardPoints(int(order.Total() / 2))

	return order, nil
}

// Total sums the totals of orders.
func Total(orders []*Order) float64 {
	total := 0.0

	for _, order := range orders {
		total += order.Total()
	}

	return total
}
