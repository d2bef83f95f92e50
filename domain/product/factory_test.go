package product_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/ddd-shop-go/domain/product"
	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

func Test_Factory_Create_TypeA(t *testing.T) {
	// act
	p, err := product.NewFactory().Create(product.TypeA, "Product A", 100)

	// assert
	assert.NoError(t, err)
	_, parseErr := uuid.Parse(p.ID())
	assert.NoError(t, parseErr)
	assert.Equal(t, "Product A", p.Name())
	assert.Equal(t, 100.0, p.Price())
	assert.IsType(t, &product.Product{}, p)
}

func Test_Factory_Create_TypeB(t *testing.T) {
	// act
	p, err := product.NewFactory().Create(product.TypeB, "Product B", 100)

	// assert
	assert.NoError(t, err)
	assert.NotEmpty(t, p.ID())
	assert.Equal(t, "Product B", p.Name())
	assert.Equal(t, 200.0, p.Price())
	assert.IsType(t, &product.ProductB{}, p)
}

func Test_Factory_Create_ShouldFail_WithInvalidType(t *testing.T) {
	// act
	p, err := product.NewFactory().Create("c", "Product C", 100)

	// assert
	assert.EqualError(t, err, "invalid product type")
	assert.Nil(t, p)
}

func Test_Factory_Create_ShouldFail_WithInvalidProduct(t *testing.T) {
	// arrange
	factory := product.NewFactory(product.WithIDGenerator(func() string { return "fixed" }))

	// act
	p, err := factory.Create(product.TypeA, "", 100)

	// assert
	assert.ErrorIs(t, err, product.ErrNameRequired)
	assert.True(t, p == nil, "a failed create must return a nil interface")
}

func Test_Factory_Create_NotifiesProductCreated(t *testing.T) {
	// arrange
	out := new(bytes.Buffer)
	dispatcher := event.NewDispatcher()
	dispatcher.Register(product.ProductCreatedEventName, product.NewSendEmailWhenProductIsCreated(out, "catalog@example.com"))
	factory := product.NewFactory(product.WithEventDispatcher(dispatcher))

	// act
	_, err := factory.Create(product.TypeB, "Product B", 100)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "Sending email to catalog@example.com: product Product B created\n", out.String())
}

func Test_Factory_Create_DoesNotNotify_OnFailure(t *testing.T) {
	// arrange
	out := new(bytes.Buffer)
	dispatcher := event.NewDispatcher()
	dispatcher.Register(product.ProductCreatedEventName, product.NewSendEmailWhenProductIsCreated(out, "catalog@example.com"))
	factory := product.NewFactory(product.WithEventDispatcher(dispatcher))

	// act
	_, err := factory.Create(product.TypeA, "Product A", -1)

	// assert
	assert.ErrorIs(t, err, product.ErrPriceNegative)
	assert.Empty(t, out.String())
}
