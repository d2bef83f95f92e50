package customer

import (
	"strings"
	"time"

	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

// Customer is the aggregate root of the customer aggregate.
type Customer struct {
	id           string
	name         string
	address      *Address
	active       bool
	rewardPoints int

	dispatcher *event.Dispatcher
	clock      func() time.Time
}

// Option defines a functional option for configuring a Customer.
type Option func(*Customer)

// WithEventDispatcher sets the dispatcher the customer notifies its events to.
func WithEventDispatcher(dispatcher *event.Dispatcher) Option {
	return func(c *Customer) {
		c.dispatcher = dispatcher
	}
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock func() time.Time) Option {
	return func(c *Customer) {
		c.clock = clock
	}
}

// New creates a validated Customer and notifies CustomerCreated.
func New(id string, name string, options ...Option) (*Customer, error) {
	c := build(id, name, options...)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.dispatcher.Notify(BuildCustomerCreated(c.id, c.name, c.clock()))

	return c, nil
}

// Restore rebuilds a Customer from persisted state without notifying any event.
func Restore(
	id string,
	name string,
	address *Address,
	active bool,
	rewardPoints int,
	options ...Option,
) (*Customer, error) {

	c := build(id, name, options...)
	c.rewardPoints = rewardPoints

	if address != nil {
		if err := address.Validate(); err != nil {
			return nil, err
		}

		restored := *address
		c.address = &restored
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if active {
		if err := c.Activate(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func build(id string, name string, options ...Option) *Customer {
	c := &Customer{
		id:   id,
		name: name,
	}

	for _, option := range options {
		option(c)
	}

	if c.dispatcher == nil {
		c.dispatcher = DefaultEventDispatcher()
	}

	if c.clock == nil {
		c.clock = time.Now
	}

	return c
}

// Validate checks the invariants of the customer.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.id) == "" {
		return ErrIDRequired
	}

	if strings.TrimSpace(c.name) == "" {
		return ErrNameRequired
	}

	return nil
}

// ChangeName renames the customer, the name must not be blank.
func (c *Customer) ChangeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}

	c.name = name

	return nil
}

// ChangeAddress notifies CustomerAddressChanged and then moves the customer to address.
func (c *Customer) ChangeAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.dispatcher.Notify(BuildCustomerAddressChanged(c.id, c.Address(), address, c.clock()))

	c.address = &address

	return nil
}

// Activate marks the customer active, which requires an address.
func (c *Customer) Activate() error {
	if c.address == nil {
		return ErrAddressMandatory
	}

	c.active = true

	return nil
}

// Deactivate marks the customer inactive.
func (c *Customer) Deactivate() {
	c.active = false
}

// IsActive reports whether the customer is active.
func (c *Customer) IsActive() bool {
	return c.active
}

// AddRewardPoints adds points to the reward balance.
func (c *Customer) AddRewardPoints(points int) {
	c.rewardPoints += points
}

// ID returns the customer ID.
func (c *Customer) ID() string {
	return c.id
}

// Name returns the customer name.
func (c *Customer) Name() string {
	return c.name
}

// Address returns a copy of the current address, or nil if there is none.
func (c *Customer) Address() *Address {
	if c.address == nil {
		return nil
	}

	address := *c.address

	return &address
}

// RewardPoints returns the reward balance.
func (c *Customer) RewardPoints() int {
	return c.rewardPoints
}
