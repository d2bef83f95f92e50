package customer

import (
	"time"

	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

// CustomerAddressChangedEventName is the event name handlers are registered under.
const CustomerAddressChangedEventName = "CustomerAddressChanged"

// CustomerAddressChanged represents when a customer moved to a new address.
// OldAddress is nil when the customer had no address before.
type CustomerAddressChanged struct {
	CustomerID string
	OldAddress *Address
	NewAddress Address
	OccurredAt time.Time
}

// BuildCustomerAddressChanged creates a new CustomerAddressChanged event.
func BuildCustomerAddressChanged(
	customerID string,
	oldAddress *Address,
	newAddress Address,
	occurredAt time.Time,
) CustomerAddressChanged {

	return CustomerAddressChanged{
		CustomerID: customerID,
		OldAddress: oldAddress,
		NewAddress: newAddress,
		OccurredAt: event.ToOccurredAt(occurredAt),
	}
}

// EventName returns the event name.
func (e CustomerAddressChanged) EventName() string {
	return CustomerAddressChangedEventName
}

// HasOccurredAt returns when this event occurred.
func (e CustomerAddressChanged) HasOccurredAt() time.Time {
	return e.OccurredAt
}
