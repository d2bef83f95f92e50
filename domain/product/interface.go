package product

// Interface is what every product variant offers to services and repositories.
type Interface interface {
	ID() string
	Name() string
	Price() float64
	ChangeName(name string) error
	ChangePrice(price float64) error
	Snapshot() Snapshot
}

// Snapshot is the persistable state of a product, Price is the stored price.
type Snapshot struct {
	Type  string
	ID    string
	Name  string
	Price float64
}

// Restore rebuilds the product variant named by s.Type.
func Restore(s Snapshot) (Interface, error) {
	return build(s.Type, s.ID, s.Name, s.Price)
}

func build(productType string, id string, name string, price float64) (Interface, error) {
	switch productType {
	case TypeA:
		p, err := New(id, name, price)
		if err != nil {
			return nil, err
		}

		return p, nil

	case TypeB:
		p, err := NewB(id, name, price)
		if err != nil {
			return nil, err
		}

		return p, nil

	default:
		return nil, ErrInvalidProductType
	}
}
