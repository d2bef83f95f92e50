package customer

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

// Factory creates customers with freshly generated IDs.
type Factory struct {
	dispatcher *event.Dispatcher
	newID      func() string
}

// FactoryOption defines a functional option for configuring a Factory.
type FactoryOption func(*Factory)

// WithFactoryEventDispatcher makes every created customer notify the given dispatcher.
func WithFactoryEventDispatcher(dispatcher *event.Dispatcher) FactoryOption {
	return func(f *Factory) {
		f.dispatcher = dispatcher
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(newID func() string) FactoryOption {
	return func(f *Factory) {
		f.newID = newID
	}
}

// NewFactory creates a Factory generating random UUIDs.
func NewFactory(options ...FactoryOption) Factory {
	f := Factory{
		newID: func() string {
			return uuid.NewString()
		},
	}

	for _, option := range options {
		option(&f)
	}

	return f
}

// Create creates a customer without an address.
func (f Factory) Create(name string) (*Customer, error) {
	return New(f.newID(), name, f.customerOptions()...)
}

// CreateWithAddress creates a customer and moves it to address right away.
func (f Factory) CreateWithAddress(name string, address Address) (*Customer, error) {
	c, err := f.Create(name)
	if err != nil {
		return nil, err
	}

	if err = c.ChangeAddress(address); err != nil {
		return nil, err
	}

	return c, nil
}

func (f Factory) customerOptions() []Option {
	if f.dispatcher == nil {
		return nil
	}

	return []Option{WithEventDispatcher(f.dispatcher)}
}
