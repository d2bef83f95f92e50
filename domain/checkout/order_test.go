package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/ddd-shop-go/domain/checkout"
)

func Test_NewOrder_ShouldFail_WithoutID(t *testing.T) {
	// act
	_, err := checkout.NewOrder("", "1", []*checkout.OrderItem{givenItem(t, "1", 10, 1)})

	// assert
	assert.EqualError(t, err, "ID is required")
}

func Test_NewOrder_ShouldFail_WithoutCustomerID(t *testing.T) {
	// act
	_, err := checkout.NewOrder("1", "", []*checkout.OrderItem{givenItem(t, "1", 10, 1)})

	// assert
	assert.EqualError(t, err, "customer ID is required")
}

func Test_NewOrder_ShouldFail_WithoutItems(t *testing.T) {
	// act
	_, err := checkout.NewOrder("1", "1", []*checkout.OrderItem{})

	// assert
	assert.EqualError(t, err, "items are required")
}

func Test_NewOrder_ShouldFail_WithNilItem(t *testing.T) {
	// act
	_, err := checkout.NewOrder("1", "1", []*checkout.OrderItem{nil})

	// assert
	assert.ErrorIs(t, err, checkout.ErrItemsRequired)
}

func Test_NewOrder_CalculatesTotal(t *testing.T) {
	// arrange
	items := []*checkout.OrderItem{
		givenItem(t, "1", 10, 1),
		givenItem(t, "2", 20, 1),
		givenItem(t, "3", 30, 1),
	}

	// act
	order, err := checkout.NewOrder("1", "1", items)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 60.0, order.Total())
}

func Test_Order_AddItems_RecomputesTotal(t *testing.T) {
	// arrange
	order := givenOrder(t, "o1", "c1", givenItem(t, "1", 100, 2))

	// act
	err := order.AddItems(givenItem(t, "2", 100, 3))

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 500.0, order.Total())
	assert.Len(t, order.Items(), 2)
}

func Test_Order_AddItems_ShouldFail_WithoutItems(t *testing.T) {
	// arrange
	order := givenOrder(t, "o1", "c1", givenItem(t, "1", 100, 2))

	// act
	err := order.AddItems()

	// assert
	assert.ErrorIs(t, err, checkout.ErrItemsRequired)
	assert.Equal(t, 200.0, order.Total())
}

func Test_Order_ChangeCustomerID(t *testing.T) {
	// arrange
	order := givenOrder(t, "o1", "123", givenItem(t, "1", 100, 2))

	// act
	err := order.ChangeCustomerID("456")
	blankErr := order.ChangeCustomerID("  ")

	// assert
	assert.NoError(t, err)
	assert.ErrorIs(t, blankErr, checkout.ErrCustomerIDRequired)
	assert.Equal(t, "456", order.CustomerID())
	assert.Equal(t, 200.0, order.Total())
}

func Test_Order_Items_ReturnsACopy(t *testing.T) {
	// arrange
	order := givenOrder(t, "o1", "c1", givenItem(t, "1", 100, 2))

	// act
	items := order.Items()
	items[0] = nil

	// assert
	assert.NotNil(t, order.Items()[0])
}

func Test_NewOrder_DoesNotShareTheCallersSlice(t *testing.T) {
	// arrange
	items := []*checkout.OrderItem{givenItem(t, "1", 10, 1)}
	order := givenOrder(t, "o1", "c1", items...)

	// act
	items[0] = givenItem(t, "2", 99, 1)

	// assert
	assert.Equal(t, "1", order.Items()[0].ID())
	assert.Equal(t, 10.0, order.Total())
}

func givenOrder(t *testing.T, id string, customerID string, items ...*checkout.OrderItem) *checkout.Order {
	t.Helper()

	order, err := checkout.NewOrder(id, customerID, items)
	assert.NoError(t, err, "error in arranging test data")

	return order
}
