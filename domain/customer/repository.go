package customer

import "context"

// Repository is the persistence port of the customer aggregate.
type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	Find(ctx context.Context, id string) (*Customer, error)
	FindAll(ctx context.Context) ([]*Customer, error)
}
