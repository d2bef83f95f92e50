package product

import (
	"time"

	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

// ProductCreatedEventName is the event name handlers are registered under.
const ProductCreatedEventName = "ProductCreated"

// ProductCreated represents when a new product has been created.
type ProductCreated struct {
	ProductID  string
	Name       string
	Price      float64
	OccurredAt time.Time
}

// BuildProductCreated creates a new ProductCreated event for p.
func BuildProductCreated(p Interface, occurredAt time.Time) ProductCreated {
	return ProductCreated{
		ProductID:  p.ID(),
		Name:       p.Name(),
		Price:      p.Price(),
		OccurredAt: event.ToOccurredAt(occurredAt),
	}
}

// EventName returns the event name.
func (e ProductCreated) EventName() string {
	return ProductCreatedEventName
}

// HasOccurredAt returns when this event occurred.
func (e ProductCreated) HasOccurredAt() time.Time {
	return e.OccurredAt
}
