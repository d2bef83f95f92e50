package postgres

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/ddd-shop-go/domain/checkout"
	"github.com/AntonStoeckl/ddd-shop-go/infrastructure/internal/adapters"
)

// OrderRepository implements checkout.Repository.
type OrderRepository struct {
	store *Store
}

type orderRow struct {
	id         string
	customerID string
	total      float64
}

type orderItemRow struct {
	id        string
	orderID   string
	productID string
	name      string
	price     float64
	quantity  int
}

// Create inserts the order and its items in one transaction.
func (r *OrderRepository) Create(ctx context.Context, order *checkout.Order) error {
	insertOrder, err := r.store.toSQL(
		dialect.Insert(r.store.tables.orders).Rows(goqu.Record{
			colID:         order.ID(),
			colCustomerID: order.CustomerID(),
			colTotal:      order.Total(),
		}),
	)
	if err != nil {
		return err
	}

	insertItems, err := r.buildInsertItems(order)
	if err != nil {
		return err
	}

	err = r.store.db.InTx(ctx, func(tx adapters.Executor) error {
		if _, execErr := r.store.exec(ctx, tx, insertOrder); execErr != nil {
			return execErr
		}

		_, execErr := r.store.exec(ctx, tx, insertItems)

		return execErr
	})
	if err != nil {
		return err
	}

	r.store.logOperation(logMsgSaved, logAttrTable, r.store.tables.orders, logAttrID, order.ID(), logAttrCount, len(order.Items()))

	return nil
}

// Update overwrites customer and total of the stored order and replaces its items,
// it returns checkout.ErrNotFound for unknown IDs.
func (r *OrderRepository) Update(ctx context.Context, order *checkout.Order) error {
	updateOrder, err := r.store.toSQL(
		dialect.Update(r.store.tables.orders).
			Set(goqu.Record{
				colCustomerID: order.CustomerID(),
				colTotal:      order.Total(),
			}).
			Where(goqu.C(colID).Eq(order.ID())),
	)
	if err != nil {
		return err
	}

	deleteItems, err := r.store.toSQL(
		dialect.Delete(r.store.tables.orderItems).Where(goqu.C(colOrderID).Eq(order.ID())),
	)
	if err != nil {
		return err
	}

	insertItems, err := r.buildInsertItems(order)
	if err != nil {
		return err
	}

	err = r.store.db.InTx(ctx, func(tx adapters.Executor) error {
		rowsAffected, execErr := r.store.exec(ctx, tx, updateOrder)
		if execErr != nil {
			return execErr
		}

		if rowsAffected == 0 {
			return checkout.ErrNotFound
		}

		for _, statement := range []string{deleteItems, insertItems} {
			if _, execErr = r.store.exec(ctx, tx, statement); execErr != nil {
				return execErr
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.store.logOperation(logMsgSaved, logAttrTable, r.store.tables.orders, logAttrID, order.ID(), logAttrCount, len(order.Items()))

	return nil
}

// Find loads one order with its items, it returns checkout.ErrNotFound for unknown IDs.
func (r *OrderRepository) Find(ctx context.Context, id string) (*checkout.Order, error) {
	orders, err := r.load(
		ctx,
		r.selectOrders().Where(goqu.C(colID).Eq(id)),
		r.selectItems().Where(goqu.C(colOrderID).Eq(id)),
	)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, checkout.ErrNotFound
	}

	return orders[0], nil
}

// FindAll loads all orders with their items, ordered by ID.
func (r *OrderRepository) FindAll(ctx context.Context) ([]*checkout.Order, error) {
	return r.load(ctx, r.selectOrders(), r.selectItems())
}

func (r *OrderRepository) buildInsertItems(order *checkout.Order) (string, error) {
	items := order.Items()
	records := make([]any, 0, len(items))

	for position, item := range items {
		records = append(records, goqu.Record{
			colID:        item.ID(),
			colOrderID:   order.ID(),
			colProductID: item.ProductID(),
			colPosition:  position,
			colName:      item.Name(),
			colPrice:     item.Price(),
			colQuantity:  item.Quantity(),
		})
	}

	return r.store.toSQL(dialect.Insert(r.store.tables.orderItems).Rows(records...))
}

func (r *OrderRepository) selectOrders() *goqu.SelectDataset {
	return dialect.
		From(r.store.tables.orders).
		Select(colID, colCustomerID, colTotal).
		Order(goqu.I(colID).Asc())
}

func (r *OrderRepository) selectItems() *goqu.SelectDataset {
	return dialect.
		From(r.store.tables.orderItems).
		Select(colID, colOrderID, colProductID, colName, colPrice, colQuantity).
		Order(goqu.I(colOrderID).Asc(), goqu.I(colPosition).Asc())
}

func (r *OrderRepository) load(
	ctx context.Context,
	selectOrders *goqu.SelectDataset,
	selectItems *goqu.SelectDataset,
) ([]*checkout.Order, error) {

	orderRows, err := r.loadOrderRows(ctx, selectOrders)
	if err != nil {
		return nil, err
	}

	if len(orderRows) == 0 {
		return []*checkout.Order{}, nil
	}

	itemsByOrder, err := r.loadItems(ctx, selectItems)
	if err != nil {
		return nil, err
	}

	orders := make([]*checkout.Order, 0, len(orderRows))

	for _, row := range orderRows {
		order, restoreErr := checkout.NewOrder(row.id, row.customerID, itemsByOrder[row.id])
		if restoreErr != nil {
			return nil, r.store.restoreFailed(r.store.tables.orders, row.id, restoreErr)
		}

		orders = append(orders, order)
	}

	r.store.logOperation(logMsgLoaded, logAttrTable, r.store.tables.orders, logAttrCount, len(orders))

	return orders, nil
}

func (r *OrderRepository) loadOrderRows(ctx context.Context, selectStmt *goqu.SelectDataset) ([]orderRow, error) {
	sqlQuery, err := r.store.toSQL(selectStmt)
	if err != nil {
		return nil, err
	}

	rows, err := r.store.query(ctx, r.store.db, sqlQuery)
	if err != nil {
		return nil, err
	}
	defer r.store.closeRows(rows)

	orderRows := make([]orderRow, 0)

	for rows.Next() {
		row := orderRow{}

		if scanErr := rows.Scan(&row.id, &row.customerID, &row.total); scanErr != nil {
			return nil, r.store.scanFailed(scanErr)
		}

		orderRows = append(orderRows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, r.store.scanFailed(err)
	}

	return orderRows, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, selectStmt *goqu.SelectDataset) (map[string][]*checkout.OrderItem, error) {
	sqlQuery, err := r.store.toSQL(selectStmt)
	if err != nil {
		return nil, err
	}

	rows, err := r.store.query(ctx, r.store.db, sqlQuery)
	if err != nil {
		return nil, err
	}
	defer r.store.closeRows(rows)

	itemsByOrder := make(map[string][]*checkout.OrderItem)

	for rows.Next() {
		row := orderItemRow{}

		if scanErr := rows.Scan(&row.id, &row.orderID, &row.productID, &row.name, &row.price, &row.quantity); scanErr != nil {
			return nil, r.store.scanFailed(scanErr)
		}

		item, restoreErr := checkout.NewOrderItem(row.id, row.name, row.price, row.productID, row.quantity)
		if restoreErr != nil {
			return nil, r.store.restoreFailed(r.store.tables.orderItems, row.id, restoreErr)
		}

		itemsByOrder[row.orderID] = append(itemsByOrder[row.orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, r.store.scanFailed(err)
	}

	return itemsByOrder, nil
}

var _ checkout.Repository = (*OrderRepository)(nil)
