package product

import "strings"

// Product is the plain product entity.
type Product struct {
	id    string
	name  string
	price float64
}

// New creates a validated Product.
func New(id string, name string, price float64) (*Product, error) {
	p := &Product{
		id:    id,
		name:  name,
		price: price,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks the invariants of the product.
func (p *Product) Validate() error {
	return validate(p.id, p.name, p.price)
}

// ID returns the product ID.
func (p *Product) ID() string {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product price.
func (p *Product) Price() float64 {
	return p.price
}

// ChangeName renames the product, the product is unchanged when the name is blank.
func (p *Product) ChangeName(name string) error {
	if err := validate(p.id, name, p.price); err != nil {
		return err
	}

	p.name = name

	return nil
}

// ChangePrice sets a new price, the product is unchanged when the price is negative.
func (p *Product) ChangePrice(price float64) error {
	if err := validate(p.id, p.name, price); err != nil {
		return err
	}

	p.price = price

	return nil
}

// Snapshot returns the persistable state.
func (p *Product) Snapshot() Snapshot {
	return Snapshot{Type: TypeA, ID: p.id, Name: p.name, Price: p.price}
}

func validate(id string, name string, price float64) error {
	switch {
	case strings.TrimSpace(id) == "":
		return ErrIDRequired
	case strings.TrimSpace(name) == "":
		return ErrNameRequired
	case price < 0:
		return ErrPriceNegative
	}

	return nil
}
