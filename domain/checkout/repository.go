package checkout

import "context"

// Repository is the persistence port of the checkout aggregate.
// Update replaces the stored item set with the current one.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	Find(ctx context.Context, id string) (*Order, error)
	FindAll(ctx context.Context) ([]*Order, error)
}
