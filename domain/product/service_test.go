package product_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/ddd-shop-go/domain/product"
)

func Test_IncreasePrice_ChangesAllPrices(t *testing.T) {
	// arrange
	product1 := givenProduct(t, "1", "Product 1", 100)
	product2 := givenProduct(t, "2", "Product 2", 200)

	// act
	err := product.IncreasePrice([]product.Interface{product1, product2}, 100)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 200.0, product1.Price())
	assert.Equal(t, 400.0, product2.Price())
}

func Test_IncreasePrice_ByFractionalPercentage(t *testing.T) {
	// arrange
	p := givenProduct(t, "1", "Product 1", 100)

	// act
	err := product.IncreasePrice([]product.Interface{p}, 10)

	// assert
	assert.NoError(t, err)
	assert.InDelta(t, 110.0, p.Price(), 0.0001)
}

func Test_IncreasePrice_ProductB_RaisesTheReportedPriceByTheSameFactor(t *testing.T) {
	// arrange
	p, err := product.NewB("1", "Product B", 100)
	assert.NoError(t, err, "error in arranging test data")

	// act
	err = product.IncreasePrice([]product.Interface{p}, 10)

	// assert
	assert.NoError(t, err)
	assert.InDelta(t, 220.0, p.Price(), 0.0001)
	assert.InDelta(t, 110.0, p.Snapshot().Price, 0.0001)
}

func Test_IncreasePrice_ProductB_ByZeroPercent_KeepsThePrice(t *testing.T) {
	// arrange
	p, err := product.NewB("1", "Product B", 100)
	assert.NoError(t, err, "error in arranging test data")

	// act
	err = product.IncreasePrice([]product.Interface{p}, 0)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 200.0, p.Price())
}

func Test_IncreasePrice_StopsAtFirstRejection(t *testing.T) {
	// arrange
	product1 := givenProduct(t, "1", "Product 1", 100)
	product2 := givenProduct(t, "2", "Product 2", 200)

	// act
	err := product.IncreasePrice([]product.Interface{product1, product2}, -200)

	// assert
	assert.ErrorIs(t, err, product.ErrPriceNegative)
	assert.Equal(t, 100.0, product1.Price())
	assert.Equal(t, 200.0, product2.Price())
}

func Test_IncreasePrice_WithoutProducts(t *testing.T) {
	// act
	err := product.IncreasePrice(nil, 50)

	// assert
	assert.NoError(t, err)
}
