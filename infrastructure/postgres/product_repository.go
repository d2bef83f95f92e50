package postgres

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/ddd-shop-go/domain/product"
)

// ProductRepository implements product.Repository.
type ProductRepository struct {
	store *Store
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, p product.Interface) error {
	snapshot := p.Snapshot()

	sqlQuery, err := r.store.toSQL(
		dialect.Insert(r.store.tables.products).Rows(goqu.Record{
			colID:    snapshot.ID,
			colType:  snapshot.Type,
			colName:  snapshot.Name,
			colPrice: snapshot.Price,
		}),
	)
	if err != nil {
		return err
	}

	if _, err = r.store.exec(ctx, r.store.db, sqlQuery); err != nil {
		return err
	}

	r.store.logOperation(logMsgSaved, logAttrTable, r.store.tables.products, logAttrID, snapshot.ID)

	return nil
}

// Update overwrites name and price of the stored product, it returns product.ErrNotFound for unknown IDs.
func (r *ProductRepository) Update(ctx context.Context, p product.Interface) error {
	snapshot := p.Snapshot()

	sqlQuery, err := r.store.toSQL(
		dialect.Update(r.store.tables.products).
			Set(goqu.Record{
				colName:  snapshot.Name,
				colPrice: snapshot.Price,
			}).
			Where(goqu.C(colID).Eq(snapshot.ID)),
	)
	if err != nil {
		return err
	}

	rowsAffected, err := r.store.exec(ctx, r.store.db, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return product.ErrNotFound
	}

	r.store.logOperation(logMsgSaved, logAttrTable, r.store.tables.products, logAttrID, snapshot.ID)

	return nil
}

// Find loads one product, it returns product.ErrNotFound for unknown IDs.
func (r *ProductRepository) Find(ctx context.Context, id string) (product.Interface, error) {
	products, err := r.load(ctx, r.selectProducts().Where(goqu.C(colID).Eq(id)))
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, product.ErrNotFound
	}

	return products[0], nil
}

// FindAll loads all products ordered by ID.
func (r *ProductRepository) FindAll(ctx context.Context) ([]product.Interface, error) {
	return r.load(ctx, r.selectProducts())
}

func (r *ProductRepository) selectProducts() *goqu.SelectDataset {
	return dialect.
		From(r.store.tables.products).
		Select(colType, colID, colName, colPrice).
		Order(goqu.I(colID).Asc())
}

func (r *ProductRepository) load(ctx context.Context, selectStmt *goqu.SelectDataset) ([]product.Interface, error) {
	sqlQuery, err := r.store.toSQL(selectStmt)
	if err != nil {
		return nil, err
	}

	rows, err := r.store.query(ctx, r.store.db, sqlQuery)
	if err != nil {
		return nil, err
	}
	defer r.store.closeRows(rows)

	products := make([]product.Interface, 0)

	for rows.Next() {
		snapshot := product.Snapshot{}

		if scanErr := rows.Scan(&snapshot.Type, &snapshot.ID, &snapshot.Name, &snapshot.Price); scanErr != nil {
			return nil, r.store.scanFailed(scanErr)
		}

		p, restoreErr := product.Restore(snapshot)
		if restoreErr != nil {
			return nil, r.store.restoreFailed(r.store.tables.products, snapshot.ID, restoreErr)
		}

		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, r.store.scanFailed(err)
	}

	r.store.logOperation(logMsgLoaded, logAttrTable, r.store.tables.products, logAttrCount, len(products))

	return products, nil
}

var _ product.Repository = (*ProductRepository)(nil)
