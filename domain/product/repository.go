package product

import "context"

// Repository is the persistence port for products.
type Repository interface {
	Create(ctx context.Context, product Interface) error
	Update(ctx context.Context, product Interface) error
	Find(ctx context.Context, id string) (Interface, error)
	FindAll(ctx context.Context) ([]Interface, error)
}
