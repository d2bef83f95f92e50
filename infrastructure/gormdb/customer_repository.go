package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AntonStoeckl/ddd-shop-go/domain/customer"
)

const modelCustomer = "customer"

// CustomerRepository implements customer.Repository.
type CustomerRepository struct {
	store *Store
}

// Create inserts a new customer.
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	rec := toCustomerModel(c)

	if err := r.store.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return r.store.failed(ErrSavingFailed, c.ID(), err)
	}

	r.store.logOperation(logMsgSaved, logAttrModel, modelCustomer, logAttrID, c.ID())

	return nil
}

// Update overwrites the stored customer, it returns customer.ErrNotFound for unknown IDs.
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	rec := toCustomerModel(c)

	result := r.store.db.WithContext(ctx).
		Model(&customerModel{}).
		Where("id = ?", c.ID()).
		Updates(map[string]any{
			"name":          rec.Name,
			"street":        rec.Street,
			"number":        rec.Number,
			"zipcode":       rec.Zipcode,
			"city":          rec.City,
			"active":        rec.Active,
			"reward_points": rec.RewardPoints,
		})

	if result.Error != nil {
		return r.store.failed(ErrSavingFailed, c.ID(), result.Error)
	}

	if result.RowsAffected == 0 {
		return customer.ErrNotFound
	}

	r.store.logOperation(logMsgSaved, logAttrModel, modelCustomer, logAttrID, c.ID())

	return nil
}

// Find loads one customer, it returns customer.ErrNotFound for unknown IDs.
func (r *CustomerRepository) Find(ctx context.Context, id string) (*customer.Customer, error) {
	var rec customerModel

	if err := r.store.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrNotFound
		}

		return nil, r.store.failed(ErrLoadingFailed, id, err)
	}

	return r.restore(rec)
}

// FindAll loads all customers ordered by ID.
func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	var recs []customerModel

	if err := r.store.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, r.store.failed(ErrLoadingFailed, "", err)
	}

	customers := make([]*customer.Customer, 0, len(recs))

	for _, rec := range recs {
		c, err := r.restore(rec)
		if err != nil {
			return nil, err
		}

		customers = append(customers, c)
	}

	r.store.logOperation(logMsgLoaded, logAttrModel, modelCustomer, logAttrCount, len(customers))

	return customers, nil
}

func (r *CustomerRepository) restore(rec customerModel) (*customer.Customer, error) {
	var address *customer.Address

	if rec.Street != nil {
		restored, err := customer.NewAddress(*rec.Street, derefOrZero(rec.Number), derefOrZero(rec.Zipcode), derefOrZero(rec.City))
		if err != nil {
			return nil, r.store.restoreFailed(modelCustomer, rec.ID, err)
		}

		address = &restored
	}

	c, err := customer.Restore(rec.ID, rec.Name, address, rec.Active, rec.RewardPoints, r.store.customerOptions...)
	if err != nil {
		return nil, r.store.restoreFailed(modelCustomer, rec.ID, err)
	}

	return c, nil
}

func toCustomerModel(c *customer.Customer) customerModel {
	rec := customerModel{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}

	if address := c.Address(); address != nil {
		street, number, zip, city := address.Street(), address.Number(), address.Zip(), address.City()
		rec.Street, rec.Number, rec.Zipcode, rec.City = &street, &number, &zip, &city
	}

	return rec
}

func derefOrZero[T any](value *T) T {
	var zero T
	if value == nil {
		return zero
	}

	return *value
}

var _ customer.Repository = (*CustomerRepository)(nil)
