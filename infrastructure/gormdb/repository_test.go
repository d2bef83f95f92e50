package gormdb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/ddd-shop-go/domain/checkout"
	"github.com/AntonStoeckl/ddd-shop-go/domain/customer"
	"github.com/AntonStoeckl/ddd-shop-go/domain/product"
	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
	. "github.com/AntonStoeckl/ddd-shop-go/infrastructure/gormdb"
	"github.com/AntonStoeckl/ddd-shop-go/testutil/pgtest"
	"github.com/AntonStoeckl/ddd-shop-go/testutil/testdoubles"
)

const tablePrefix = "gormrepo_"

func Test_CustomerRepository_CreateUpdateFind(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := givenStore(t).Customers()
	c := givenCustomer(t, "123", "Customer 1")
	assert.NoError(t, repo.Create(ctx, c), "error in arranging test data")

	address, err := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
	assert.NoError(t, err, "error in arranging test data")
	assert.NoError(t, c.ChangeAddress(address), "error in arranging test data")
	assert.NoError(t, c.Activate(), "error in arranging test data")
	c.AddRewardPoints(25)

	// act
	err = repo.Update(ctx, c)
	found, findErr := repo.Find(ctx, "123")

	// assert
	assert.NoError(t, err)
	assert.NoError(t, findErr)
	assert.True(t, found.IsActive())
	assert.Equal(t, 25, found.RewardPoints())
	assert.True(t, address.Equals(*found.Address()))
}

func Test_CustomerRepository_NotFound(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := givenStore(t).Customers()

	// act
	_, findErr := repo.Find(ctx, "missing")
	updateErr := repo.Update(ctx, givenCustomer(t, "missing", "Customer 1"))

	// assert
	assert.ErrorIs(t, findErr, customer.ErrNotFound)
	assert.ErrorIs(t, updateErr, customer.ErrNotFound)
}

func Test_ProductRepository_CreateUpdateFindAll(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := givenStore(t).Products()
	productA := givenProduct(t, product.TypeA, "1", "Product 1", 100)
	productB := givenProduct(t, product.TypeB, "2", "Product 2", 100)
	assert.NoError(t, repo.Create(ctx, productA), "error in arranging test data")
	assert.NoError(t, repo.Create(ctx, productB), "error in arranging test data")
	assert.NoError(t, productA.ChangePrice(150), "error in arranging test data")

	// act
	err := repo.Update(ctx, productA)
	products, findErr := repo.FindAll(ctx)

	// assert
	assert.NoError(t, err)
	assert.NoError(t, findErr)
	assert.Len(t, products, 2)
	assert.Equal(t, 150.0, products[0].Price())
	assert.Equal(t, 200.0, products[1].Price())
}

func Test_ProductRepository_Find_ShouldFail_WhenNotFound(t *testing.T) {
	// act
	_, err := givenStore(t).Products().Find(context.Background(), "missing")

	// assert
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func Test_OrderRepository_CreateAndUpdate(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := givenStore(t).Orders()
	order := givenOrder(t, "123", "123", givenItem(t, "1", 100, 2))
	assert.NoError(t, repo.Create(ctx, order), "error in arranging test data")
	assert.NoError(t, order.ChangeCustomerID("456"), "error in arranging test data")
	assert.NoError(t, order.AddItems(givenItem(t, "2", 100, 3)), "error in arranging test data")

	// act
	err := repo.Update(ctx, order)
	found, findErr := repo.Find(ctx, "123")

	// assert
	assert.NoError(t, err)
	assert.NoError(t, findErr)
	assert.Equal(t, "456", found.CustomerID())
	assert.Equal(t, 500.0, found.Total())
	assert.Len(t, found.Items(), 2)
	assert.Equal(t, "1", found.Items()[0].ID())
	assert.Equal(t, "2", found.Items()[1].ID())
}

func Test_OrderRepository_Create_ShouldRollBack_WhenAnItemBelongsToAnotherOrder(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := givenStore(t).Orders()
	assert.NoError(t, repo.Create(ctx, givenOrder(t, "o1", "123", givenItem(t, "1", 100, 2))), "error in arranging test data")
	other := givenOrder(t, "o2", "456", givenItem(t, "1", 50, 1))

	// act
	err := repo.Create(ctx, other)
	_, findErr := repo.Find(ctx, "o2")
	first, firstErr := repo.Find(ctx, "o1")

	// assert
	assert.ErrorIs(t, err, ErrSavingFailed)
	assert.ErrorIs(t, findErr, checkout.ErrNotFound)
	assert.NoError(t, firstErr)
	assert.Len(t, first.Items(), 1)
	assert.Equal(t, 200.0, first.Items()[0].Total())
}

func Test_OrderRepository_Update_ShouldFail_WhenNotFound(t *testing.T) {
	// arrange
	order := givenOrder(t, "missing", "123", givenItem(t, "1", 100, 2))

	// act
	err := givenStore(t).Orders().Update(context.Background(), order)

	// assert
	assert.ErrorIs(t, err, checkout.ErrNotFound)
}

func Test_OrderRepository_FindAll(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := givenStore(t).Orders()
	assert.NoError(t, repo.Create(ctx, givenOrder(t, "o2", "456", givenItem(t, "2", 50, 2))), "error in arranging test data")
	assert.NoError(t, repo.Create(ctx, givenOrder(t, "o1", "123", givenItem(t, "1", 100, 1))), "error in arranging test data")

	// act
	orders, err := repo.FindAll(ctx)

	// assert
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, "o1", orders[0].ID())
	assert.Equal(t, 200.0, checkout.Total(orders))
}

func Test_Connect_WithLogger_LogsSQL(t *testing.T) {
	// arrange
	cfg := pgtest.Config(t)
	cfg.TablePrefix = tablePrefix
	logger := testdoubles.NewLoggerSpy()

	db, err := Connect(context.Background(), cfg, logger)
	if err != nil {
		t.Skipf("test database not reachable: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })

	store, err := NewStore(db, WithLogger(logger))
	assert.NoError(t, err, "error in arranging test data")
	t.Cleanup(func() { _ = store.DropSchema(context.Background()) })

	// act
	err = store.AutoMigrate(context.Background())

	// assert
	assert.NoError(t, err)
	assert.True(t, logger.HasLog("debug", "gorm: "))
	assert.True(t, logger.HasLog("info", "repository operation: schema migrated"))
}

func givenStore(t *testing.T) *Store {
	t.Helper()

	cfg := pgtest.Config(t)
	cfg.TablePrefix = tablePrefix

	db, err := Connect(context.Background(), cfg, nil)
	if err != nil {
		t.Skipf("test database not reachable: %v", err)
	}

	store, err := NewStore(db, WithCustomerOptions(customer.WithEventDispatcher(event.NewDispatcher())))
	assert.NoError(t, err, "error in arranging test data")

	ctx := context.Background()
	assert.NoError(t, store.DropSchema(ctx), "error dropping leftover tables")
	assert.NoError(t, store.AutoMigrate(ctx), "error migrating tables")

	t.Cleanup(func() {
		_ = store.DropSchema(context.Background()) // the next run drops leftovers anyway
		_ = Close(db)
	})

	return store
}

func givenProduct(t *testing.T, productType string, id string, name string, price float64) product.Interface {
	t.Helper()

	p, err := product.Restore(product.Snapshot{Type: productType, ID: id, Name: name, Price: price})
	assert.NoError(t, err, "error in arranging test data")

	return p
}

func givenCustomer(t *testing.T, id string, name string) *customer.Customer {
	t.Helper()

	c, err := customer.New(id, name, customer.WithEventDispatcher(event.NewDispatcher()))
	assert.NoError(t, err, "error in arranging test data")

	return c
}

func givenItem(t *testing.T, id string, price float64, quantity int) *checkout.OrderItem {
	t.Helper()

	item, err := checkout.NewOrderItem(id, "Item "+id, price, "p"+id, quantity)
	assert.NoError(t, err, "error in arranging test data")

	return item
}

func givenOrder(t *testing.T, id string, customerID string, items ...*checkout.OrderItem) *checkout.Order {
	t.Helper()

	order, err := checkout.NewOrder(id, customerID, items)
	assert.NoError(t, err, "error in arranging test data")

	return order
}
