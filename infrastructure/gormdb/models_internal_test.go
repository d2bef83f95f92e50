package gormdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"

	"github.com/AntonStoeckl/ddd-shop-go/domain/checkout"
	"github.com/AntonStoeckl/ddd-shop-go/domain/customer"
	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

func Test_NamingStrategy_DerivesPrefixedTableNames(t *testing.T) {
	// arrange
	naming := schema.NamingStrategy{TablePrefix: "demo_", NameReplacer: namingReplacer}

	// act + assert
	assert.Equal(t, "demo_customers", naming.TableName("customerModel"))
	assert.Equal(t, "demo_order_items", naming.TableName("orderItemModel"))
}

func Test_ToCustomerModel_WithoutAddress(t *testing.T) {
	// arrange
	c, err := customer.New("123", "Customer 1", customer.WithEventDispatcher(event.NewDispatcher()))
	assert.NoError(t, err, "error in arranging test data")

	// act
	rec := toCustomerModel(c)

	// assert
	assert.Equal(t, "123", rec.ID)
	assert.Nil(t, rec.Street)
	assert.Nil(t, rec.Number)
	assert.False(t, rec.Active)
}

func Test_ToCustomerModel_WithAddress(t *testing.T) {
	// arrange
	address, err := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
	assert.NoError(t, err, "error in arranging test data")
	c, err := customer.Restore("123", "Customer 1", &address, true, 7)
	assert.NoError(t, err, "error in arranging test data")

	// act
	rec := toCustomerModel(c)

	// assert
	assert.Equal(t, "Street 1", *rec.Street)
	assert.Equal(t, 1, *rec.Number)
	assert.Equal(t, "Zipcode 1", *rec.Zipcode)
	assert.Equal(t, "City 1", *rec.City)
	assert.True(t, rec.Active)
	assert.Equal(t, 7, rec.RewardPoints)
}

func Test_ToOrderModel_NumbersItemPositions(t *testing.T) {
	// arrange
	first, err := checkout.NewOrderItem("1", "Item 1", 100, "p1", 2)
	assert.NoError(t, err, "error in arranging test data")
	second, err := checkout.NewOrderItem("2", "Item 2", 50, "p2", 1)
	assert.NoError(t, err, "error in arranging test data")
	order, err := checkout.NewOrder("o1", "c1", []*checkout.OrderItem{first, second})
	assert.NoError(t, err, "error in arranging test data")

	// act
	rec := toOrderModel(order)

	// assert
	assert.Equal(t, 250.0, rec.Total)
	assert.Len(t, rec.Items, 2)
	assert.Equal(t, 1, rec.Items[1].Position)
	assert.Equal(t, "o1", rec.Items[1].OrderID)
	assert.Equal(t, "p2", rec.Items[1].ProductID)
}

func Test_NewStore_ShouldFail_WithNilConnection(t *testing.T) {
	// act
	_, err := NewStore(nil)

	// assert
	assert.ErrorIs(t, err, ErrNilDatabaseConnection)
}
