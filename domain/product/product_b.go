package product

// ProductB is the product variant whose reported price is twice the stored one.
type ProductB struct {
	Product
}

// NewB creates a validated ProductB.
func NewB(id string, name string, price float64) (*ProductB, error) {
	p, err := New(id, name, price)
	if err != nil {
		return nil, err
	}

	return &ProductB{Product: *p}, nil
}

// Price returns twice the stored price.
func (p *ProductB) Price() float64 {
	return p.price * 2
}

// Snapshot returns the persistable state.
func (p *ProductB) Snapshot() Snapshot {
	s := p.Product.Snapshot()
	s.Type = TypeB

	return s
}

var _ Interface = (*Product)(nil)
var _ Interface = (*ProductB)(nil)
