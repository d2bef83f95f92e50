package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AntonStoeckl/ddd-shop-go/domain/product"
)

const modelProduct = "product"

// ProductRepository implements product.Repository.
type ProductRepository struct {
	store *Store
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, p product.Interface) error {
	snapshot := p.Snapshot()
	rec := productModel{ID: snapshot.ID, Type: snapshot.Type, Name: snapshot.Name, Price: snapshot.Price}

	if err := r.store.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return r.store.failed(ErrSavingFailed, snapshot.ID, err)
	}

	r.store.logOperation(logMsgSaved, logAttrModel, modelProduct, logAttrID, snapshot.ID)

	return nil
}

// Update overwrites name and price of the stored product, it returns product.ErrNotFound for unknown IDs.
func (r *ProductRepository) Update(ctx context.Context, p product.Interface) error {
	snapshot := p.Snapshot()

	result := r.store.db.WithContext(ctx).
		Model(&productModel{}).
		Where("id = ?", snapshot.ID).
		Updates(map[string]any{"name": snapshot.Name, "price": snapshot.Price})

	if result.Error != nil {
		return r.store.failed(ErrSavingFailed, snapshot.ID, result.Error)
	}

	if result.RowsAffected == 0 {
		return product.ErrNotFound
	}

	r.store.logOperation(logMsgSaved, logAttrModel, modelProduct, logAttrID, snapshot.ID)

	return nil
}

// Find loads one product, it returns product.ErrNotFound for unknown IDs.
func (r *ProductRepository) Find(ctx context.Context, id string) (product.Interface, error) {
	var rec productModel

	if err := r.store.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrNotFound
		}

		return nil, r.store.failed(ErrLoadingFailed, id, err)
	}

	return r.restore(rec)
}

// FindAll loads all products ordered by ID.
func (r *ProductRepository) FindAll(ctx context.Context) ([]product.Interface, error) {
	var recs []productModel

	if err := r.store.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, r.store.failed(ErrLoadingFailed, "", err)
	}

	products := make([]product.Interface, 0, len(recs))

	for _, rec := range recs {
		p, err := r.restore(rec)
		if err != nil {
			return nil, err
		}

		products = append(products, p)
	}

	r.store.logOperation(logMsgLoaded, logAttrModel, modelProduct, logAttrCount, len(products))

	return products, nil
}

func (r *ProductRepository) restore(rec productModel) (product.Interface, error) {
	p, err := product.Restore(product.Snapshot{Type: rec.Type, ID: rec.ID, Name: rec.Name, Price: rec.Price})
	if err != nil {
		return nil, r.store.restoreFailed(modelProduct, rec.ID, err)
	}

	return p, nil
}

var _ product.Repository = (*ProductRepository)(nil)
