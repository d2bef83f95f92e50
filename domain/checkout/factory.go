package checkout

import "github.com/google/uuid"

// Props carries the input for Factory.Create.
type Props struct {
	CustomerID string
	Items      []ItemProps
}

// ItemProps carries the input for one OrderItem.
type ItemProps struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       float64
}

// Factory creates orders with freshly generated IDs for the order and each item.
type Factory struct {
	newID func() string
}

// NewFactory creates a Factory generating random UUIDs.
func NewFactory() Factory {
	return Factory{newID: uuid.NewString}
}

// Create builds an Order from props.
func (f Factory) Create(props Props) (*Order, error) {
	items := make([]*OrderItem, 0, len(props.Items))

	for _, itemProps := range props.Items {
		item, err := NewOrderItem(f.newID(), itemProps.ProductName, itemProps.Price, itemProps.ProductID, itemProps.Quantity)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return NewOrder(f.newID(), props.CustomerID, items)
}
