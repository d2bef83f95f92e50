package postgres

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/ddd-shop-go/domain/customer"
)

// CustomerRepository implements customer.Repository.
type CustomerRepository struct {
	store *Store
}

type customerRow struct {
	id           string
	name         string
	street       sql.NullString
	number       sql.NullInt64
	zipcode      sql.NullString
	city         sql.NullString
	active       bool
	rewardPoints int
}

// Create inserts a new customer.
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	record := customerRecord(c)
	record[colID] = c.ID()

	sqlQuery, err := r.store.toSQL(dialect.Insert(r.store.tables.customers).Rows(record))
	if err != nil {
		return err
	}

	if _, err = r.store.exec(ctx, r.store.db, sqlQuery); err != nil {
		return err
	}

	r.store.logOperation(logMsgSaved, logAttrTable, r.store.tables.customers, logAttrID, c.ID())

	return nil
}

// Update overwrites the stored customer, it returns customer.ErrNotFound for unknown IDs.
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	sqlQuery, err := r.store.toSQL(
		dialect.Update(r.store.tables.customers).
			Set(customerRecord(c)).
			Where(goqu.C(colID).Eq(c.ID())),
	)
	if err != nil {
		return err
	}

	rowsAffected, err := r.store.exec(ctx, r.store.db, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return customer.ErrNotFound
	}

	r.store.logOperation(logMsgSaved, logAttrTable, r.store.tables.customers, logAttrID, c.ID())

	return nil
}

// Find loads one customer, it returns customer.ErrNotFound for unknown IDs.
func (r *CustomerRepository) Find(ctx context.Context, id string) (*customer.Customer, error) {
	customers, err := r.load(ctx, r.selectCustomers().Where(goqu.C(colID).Eq(id)))
	if err != nil {
		return nil, err
	}

	if len(customers) == 0 {
		return nil, customer.ErrNotFound
	}

	return customers[0], nil
}

// FindAll loads all customers ordered by ID.
func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	return r.load(ctx, r.selectCustomers())
}

func (r *CustomerRepository) selectCustomers() *goqu.SelectDataset {
	return dialect.
		From(r.store.tables.customers).
		Select(colID, colName, colStreet, colNumber, colZipcode, colCity, colActive, colRewardPoints).
		Order(goqu.I(colID).Asc())
}

func (r *CustomerRepository) load(ctx context.Context, selectStmt *goqu.SelectDataset) ([]*customer.Customer, error) {
	sqlQuery, err := r.store.toSQL(selectStmt)
	if err != nil {
		return nil, err
	}

	rows, err := r.store.query(ctx, r.store.db, sqlQuery)
	if err != nil {
		return nil, err
	}
	defer r.store.closeRows(rows)

	customers := make([]*customer.Customer, 0)

	for rows.Next() {
		row := customerRow{}

		scanErr := rows.Scan(&row.id, &row.name, &row.street, &row.number, &row.zipcode, &row.city, &row.active, &row.rewardPoints)
		if scanErr != nil {
			return nil, r.store.scanFailed(scanErr)
		}

		c, restoreErr := r.restore(row)
		if restoreErr != nil {
			return nil, r.store.restoreFailed(r.store.tables.customers, row.id, restoreErr)
		}

		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, r.store.scanFailed(err)
	}

	r.store.logOperation(logMsgLoaded, logAttrTable, r.store.tables.customers, logAttrCount, len(customers))

	return customers, nil
}

func (r *CustomerRepository) restore(row customerRow) (*customer.Customer, error) {
	var address *customer.Address

	if row.street.Valid {
		restored, err := customer.NewAddress(row.street.String, int(row.number.Int64), row.zipcode.String, row.city.String)
		if err != nil {
			return nil, err
		}

		address = &restored
	}

	return customer.Restore(row.id, row.name, address, row.active, row.rewardPoints, r.store.customerOptions...)
}

func customerRecord(c *customer.Customer) goqu.Record {
	record := goqu.Record{
		colName:         c.Name(),
		colStreet:       nil,
		colNumber:       nil,
		colZipcode:      nil,
		colCity:         nil,
		colActive:       c.IsActive(),
		colRewardPoints: c.RewardPoints(),
	}

	if address := c.Address(); address != nil {
		record[colStreet] = address.Street()
		record[colNumber] = address.Number()
		record[colZipcode] = address.Zip()
		record[colCity] = address.City()
	}

	return record
}

var _ customer.Repository = (*CustomerRepository)(nil)
