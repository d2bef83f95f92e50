package product_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/ddd-shop-go/domain/product"
	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

func Test_SendEmailWhenProductIsCreated(t *testing.T) {
	// arrange
	out := new(bytes.Buffer)
	dispatcher := event.NewDispatcher()
	handler := product.NewSendEmailWhenProductIsCreated(out, "catalog@example.com")
	dispatcher.Register(product.ProductCreatedEventName, handler)
	p := givenProduct(t, "1", "Product 1", 10)

	// act
	dispatcher.Notify(product.BuildProductCreated(p, time.Now()))

	// assert
	assert.Equal(t, "Sending email to catalog@example.com: product Product 1 created\n", out.String())
	assert.Len(t, dispatcher.Handlers(product.ProductCreatedEventName), 1)
}

func Test_SendEmailWhenProductIsCreated_Unregistered(t *testing.T) {
	// arrange
	out := new(bytes.Buffer)
	dispatcher := event.NewDispatcher()
	handler := product.NewSendEmailWhenProductIsCreated(out, "catalog@example.com")
	dispatcher.Register(product.ProductCreatedEventName, handler)

	// act
	dispatcher.Unregister(product.ProductCreatedEventName, handler)
	dispatcher.Notify(product.BuildProductCreated(givenProduct(t, "1", "Product 1", 10), time.Now()))

	// assert
	assert.Empty(t, dispatcher.Handlers(product.ProductCreatedEventName))
	assert.Empty(t, out.String())
}

func Test_BuildProductCreated_UsesReportedPrice(t *testing.T) {
	// arrange
	p, err := product.NewB("1", "Product B", 10)
	assert.NoError(t, err)

	// act
	created := product.BuildProductCreated(p, time.Now())

	// assert
	assert.Equal(t, "1", created.ProductID)
	assert.Equal(t, 20.0, created.Price)
	assert.Equal(t, product.ProductCreatedEventName, created.EventName())
}
