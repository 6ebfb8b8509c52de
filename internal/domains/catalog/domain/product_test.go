package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_DefaultsCategory(t *testing.T) {
	product, err := NewProduct(0, "Widget", decimal.NewFromFloat(10.00), "", 5)
	require.NoError(t, err)
	assert.Equal(t, DefaultCategory, product.Category)
	assert.True(t, product.InStock())
}

func TestNewProduct_RejectsInvalidInput(t *testing.T) {
	_, err := NewProduct(0, "  ", decimal.NewFromInt(1), "", 0)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct(0, "Widget", decimal.NewFromInt(-1), "", 0)
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewProduct(0, "Widget", decimal.NewFromInt(1), "", -3)
	assert.ErrorIs(t, err, ErrNegativeStock)
}

func TestReduceStock_NeverGoesNegative(t *testing.T) {
	product, err := NewProduct(0, "Widget", decimal.NewFromFloat(10.00), "", 5)
	require.NoError(t, err)

	require.NoError(t, product.ReduceStock(3))
	assert.Equal(t, 2, product.Stock)

	err = product.ReduceStock(3)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 2, product.Stock, "failed reduction must not mutate stock")
}

func TestReduceStock_RejectsNonPositiveAmount(t *testing.T) {
	product, err := NewProduct(0, "Widget", decimal.NewFromFloat(10.00), "", 5)
	require.NoError(t, err)

	assert.ErrorIs(t, product.ReduceStock(0), ErrNonPositiveAmount)
	assert.ErrorIs(t, product.ReduceStock(-1), ErrNonPositiveAmount)
	assert.Equal(t, 5, product.Stock)
}

func TestInStock_FollowsStockLevel(t *testing.T) {
	product, err := NewProduct(0, "Widget", decimal.NewFromFloat(10.00), "", 1)
	require.NoError(t, err)
	assert.True(t, product.InStock())

	require.NoError(t, product.ReduceStock(1))
	assert.False(t, product.InStock())
}

func TestEquals_ComparesByIdentityOnly(t *testing.T) {
	a, err := NewProduct(7, "Widget", decimal.NewFromFloat(10.00), "Tools", 5)
	require.NoError(t, err)
	b, err := NewProduct(7, "Renamed Widget", decimal.NewFromFloat(99.00), "Other", 0)
	require.NoError(t, err)
	c, err := NewProduct(8, "Widget", decimal.NewFromFloat(10.00), "Tools", 5)
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

func TestSetPrice_RejectsNegativeWithoutMutation(t *testing.T) {
	product, err := NewProduct(0, "Widget", decimal.NewFromFloat(10.00), "", 5)
	require.NoError(t, err)

	err = product.SetPrice(decimal.NewFromFloat(-0.01))
	assert.ErrorIs(t, err, ErrNegativePrice)
	assert.True(t, product.UnitPrice.Equal(decimal.NewFromFloat(10.00)))
}

func TestSetPrice_RejectsSubCentPrecisionWithoutMutation(t *testing.T) {
	product, err := NewProduct(0, "Widget", decimal.NewFromFloat(10.00), "", 5)
	require.NoError(t, err)

	err = product.SetPrice(decimal.NewFromFloat(19.999))
	assert.ErrorIs(t, err, ErrSubCentPrice)
	assert.True(t, product.UnitPrice.Equal(decimal.NewFromFloat(10.00)))

	_, err = NewProduct(0, "Widget", decimal.NewFromFloat(19.999), "", 5)
	assert.ErrorIs(t, err, ErrSubCentPrice)
}
