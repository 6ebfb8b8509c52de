package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLine_MergesDuplicateProducts(t *testing.T) {
	cart := NewCart()

	require.NoError(t, cart.AddLine(1, 2))
	require.NoError(t, cart.AddLine(1, 3))

	assert.Equal(t, 1, cart.LineCount(), "same product must never produce two lines")
	assert.Equal(t, 5, cart.Quantity(1))
}

func TestAddLine_RejectsNonPositiveQuantity(t *testing.T) {
	cart := NewCart()

	assert.ErrorIs(t, cart.AddLine(1, 0), ErrNonPositiveQuantity)
	assert.ErrorIs(t, cart.AddLine(1, -2), ErrNonPositiveQuantity)
	assert.True(t, cart.IsEmpty())
}

func TestAddLine_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddLine(3, 1))
	require.NoError(t, cart.AddLine(1, 1))
	require.NoError(t, cart.AddLine(2, 1))
	require.NoError(t, cart.AddLine(1, 4))

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, int64(3), lines[0].ProductID)
	assert.Equal(t, int64(1), lines[1].ProductID)
	assert.Equal(t, int64(2), lines[2].ProductID)
	assert.Equal(t, 5, lines[1].Quantity)
}

func TestRemoveLine_AbsentProductIsNoOp(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddLine(1, 2))

	cart.RemoveLine(99)
	assert.Equal(t, 1, cart.LineCount())

	cart.RemoveLine(1)
	assert.True(t, cart.IsEmpty())
}

func TestLines_ReturnsDefensiveCopy(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddLine(1, 2))

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 2, cart.Quantity(1), "mutating the returned slice must not leak into the cart")
}

func TestClear_RestoresEmptyState(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddLine(1, 2))
	require.NoError(t, cart.AddLine(2, 1))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.LineCount())
	assert.Empty(t, cart.Lines())
}

func TestRestoreCart_MergesLegacyDuplicates(t *testing.T) {
	cart, err := RestoreCart([]CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
		{ProductID: 1, Quantity: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, cart.LineCount())
	assert.Equal(t, 5, cart.Quantity(1))
}
