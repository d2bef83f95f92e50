package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AntonStoeckl/ddd-shop-go/domain/checkout"
)

const modelOrder = "order"

// OrderRepository implements checkout.Repository.
type OrderRepository struct {
	store *Store
}

// Create inserts the order and then its items in one transaction.
// Items are inserted plainly, an item ID that belongs to another order fails the whole create.
func (r *OrderRepository) Create(ctx context.Context, order *checkout.Order) error {
	rec := toOrderModel(order)

	err := r.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&rec).Error; err != nil {
			return err
		}

		return tx.Create(&rec.Items).Error
	})

	if err != nil {
		return r.store.failed(ErrSavingFailed, order.ID(), err)
	}

	r.store.logOperation(logMsgSaved, logAttrModel, modelOrder, logAttrID, order.ID(), logAttrCount, len(rec.Items))

	return nil
}

// Update overwrites customer and total of the stored order and replaces its items in one transaction,
// it returns checkout.ErrNotFound for unknown IDs.
func (r *OrderRepository) Update(ctx context.Context, order *checkout.Order) error {
	rec := toOrderModel(order)

	err := r.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&orderModel{}).
			Where("id = ?", rec.ID).
			Updates(map[string]any{"customer_id": rec.CustomerID, "total": rec.Total})

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return checkout.ErrNotFound
		}

		if err := tx.Where("order_id = ?", rec.ID).Delete(&orderItemModel{}).Error; err != nil {
			return err
		}

		return tx.Create(&rec.Items).Error
	})

	if errors.Is(err, checkout.ErrNotFound) {
		return err
	}

	if err != nil {
		return r.store.failed(ErrSavingFailed, order.ID(), err)
	}

	r.store.logOperation(logMsgSaved, logAttrModel, modelOrder, logAttrID, order.ID(), logAttrCount, len(rec.Items))

	return nil
}

// Find loads one order with its items, it returns checkout.ErrNotFound for unknown IDs.
func (r *OrderRepository) Find(ctx context.Context, id string) (*checkout.Order, error) {
	var rec orderModel

	if err := r.withItems(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, checkout.ErrNotFound
		}

		return nil, r.store.failed(ErrLoadingFailed, id, err)
	}

	return r.restore(rec)
}

// FindAll loads all orders with their items, ordered by ID.
func (r *OrderRepository) FindAll(ctx context.Context) ([]*checkout.Order, error) {
	var recs []orderModel

	if err := r.withItems(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, r.store.failed(ErrLoadingFailed, "", err)
	}

	orders := make([]*checkout.Order, 0, len(recs))

	for _, rec := range recs {
		order, err := r.restore(rec)
		if err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	r.store.logOperation(logMsgLoaded, logAttrModel, modelOrder, logAttrCount, len(orders))

	return orders, nil
}

func (r *OrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.store.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *OrderRepository) restore(rec orderModel) (*checkout.Order, error) {
	items := make([]*checkout.OrderItem, 0, len(rec.Items))

	for _, itemRec := range rec.Items {
		item, err := checkout.NewOrderItem(itemRec.ID, itemRec.Name, itemRec.Price, itemRec.ProductID, itemRec.Quantity)
		if err != nil {
			return nil, r.store.restoreFailed(modelOrder, rec.ID, err)
		}

		items = append(items, item)
	}

	order, err := checkout.NewOrder(rec.ID, rec.CustomerID, items)
	if err != nil {
		return nil, r.store.restoreFailed(modelOrder, rec.ID, err)
	}

	return order, nil
}

func toOrderModel(order *checkout.Order) orderModel {
	items := order.Items()
	rec := orderModel{
		ID:         order.ID(),
		CustomerID: order.CustomerID(),
		Total:      order.Total(),
		Items:      make([]orderItemModel, 0, len(items)),
	}

	for position, item := range items {
		rec.Items = append(rec.Items, orderItemModel{
			ID:        item.ID(),
			OrderID:   order.ID(),
			ProductID: item.ProductID(),
			Position:  position,
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
	}

	return rec
}

var _ checkout.Repository = (*OrderRepository)(nil)
