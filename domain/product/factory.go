package product

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

// Product types known to the Factory.
const (
	TypeA = "a"
	TypeB = "b"
)

// Factory creates products with freshly generated IDs.
type Factory struct {
	newID      func() string
	dispatcher *event.Dispatcher
}

// FactoryOption defines a functional option for configuring a Factory.
type FactoryOption func(*Factory)

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(newID func() string) FactoryOption {
	return func(f *Factory) {
		f.newID = newID
	}
}

// WithEventDispatcher makes the factory notify ProductCreated for every product it creates.
func WithEventDispatcher(dispatcher *event.Dispatcher) FactoryOption {
	return func(f *Factory) {
		f.dispatcher = dispatcher
	}
}

// NewFactory creates a Factory generating random UUIDs.
func NewFactory(options ...FactoryOption) Factory {
	f := Factory{newID: uuid.NewString}

	for _, option := range options {
		option(&f)
	}

	return f
}

// Create builds a Product for TypeA and a ProductB for TypeB.
func (f Factory) Create(productType string, name string, price float64) (Interface, error) {
	p, err := build(productType, f.newID(), name, price)
	if err != nil {
		return nil, err
	}

	if f.dispatcher != nil {
		f.dispatcher.Notify(BuildProductCreated(p, time.Now()))
	}

	return p, nil
}
