package customer

import (
	"time"

	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

// CustomerCreatedEventName is the event name handlers are registered under.
const CustomerCreatedEventName = "CustomerCreated"

// CustomerCreated represents when a new customer has been created.
type CustomerCreated struct {
	CustomerID string
	Name       string
	OccurredAt time.Time
}

// BuildCustomerCreated creates a new CustomerCreated event.
func BuildCustomerCreated(customerID string, name string, occurredAt time.Time) CustomerCreated {
	return CustomerCreated{
		CustomerID: customerID,
		Name:       name,
		OccurredAt: event.ToOccurredAt(occurredAt),
	}
}

// EventName returns the event name.
func (e CustomerCreated) EventName() string {
	return CustomerCreatedEventName
}

// HasOccurredAt returns when this event occurred.
func (e CustomerCreated) HasOccurredAt() time.Time {
	return e.OccurredAt
}
