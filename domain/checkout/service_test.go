package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/ddd-shop-go/domain/checkout"
	"github.com/AntonStoeckl/ddd-shop-go/domain/customer"
	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

func Test_PlaceOrder(t *testing.T) {
	// arrange
	c := givenCustomer(t, "c1", "Customer 1")
	item := givenItem(t, "i1", 100, 1)

	// act
	order, err := checkout.PlaceOrder(c, []*checkout.OrderItem{item})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 50, c.RewardPoints())
	assert.Equal(t, 100.0, order.Total())
	assert.Equal(t, "c1", order.CustomerID())
	assert.NotEmpty(t, order.ID())
}

func Test_PlaceOrder_AccumulatesRewardPoints(t *testing.T) {
	// arrange
	c := givenCustomer(t, "c1", "Customer 1")

	// act
	_, err1 := checkout.PlaceOrder(c, []*checkout.OrderItem{givenItem(t, "i1", 100, 1)})
	_, err2 := checkout.PlaceOrder(c, []*checkout.OrderItem{givenItem(t, "i2", 15, 1)})

	// assert
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, 50+7, c.RewardPoints())
}

func Test_PlaceOrder_ShouldFail_WithoutItems(t *testing.T) {
	// arrange
	c := givenCustomer(t, "c1", "Customer 1")

	// act
	order, err := checkout.PlaceOrder(c, nil)

	// assert
	assert.ErrorIs(t, err, checkout.ErrNoItems)
	assert.Nil(t, order)
	assert.Equal(t, 0, c.RewardPoints())
}

func Test_PlaceOrder_ShouldFail_WithoutCustomer(t *testing.T) {
	// act
	order, err := checkout.PlaceOrder(nil, []*checkout.OrderItem{givenItem(t, "i1", 100, 1)})

	// assert
	assert.ErrorIs(t, err, checkout.ErrCustomerRequired)
	assert.Nil(t, order)
}

func Test_Total_OfAllOrders(t *testing.T) {
	// arrange
	order1 := givenOrder(t, "o1", "c1", givenItem(t, "i1", 100, 1))
	order2 := givenOrder(t, "o2", "c2", givenItem(t, "i2", 200, 2))

	// act
	total := checkout.Total([]*checkout.Order{order1, order2})

	// assert
	assert.Equal(t, 500.0, total)
}

func Test_Total_WithoutOrders(t *testing.T) {
	// assert
	assert.Equal(t, 0.0, checkout.Total(nil))
}

func givenCustomer(t *testing.T, id string, name string) *customer.Customer {
	t.Helper()

	c, err := customer.New(id, name, customer.WithEventDispatcher(event.NewDispatcher()))
	assert.NoError(t, err, "error in arranging test data")

	return c
}
