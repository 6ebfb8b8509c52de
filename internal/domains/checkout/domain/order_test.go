package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() Spec {
	return Spec{
		CustomerID: 1,
		Lines: []Line{
			{ProductID: 1, Name: "Widget", UnitPrice: decimal.NewFromFloat(25.00), Quantity: 2},
		},
		Subtotal: decimal.NewFromFloat(50.00),
		Tax:      decimal.NewFromFloat(4.00),
		Shipping: decimal.NewFromFloat(10.00),
		Total:    decimal.NewFromFloat(64.00),
		PlacedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewOrder_StartsPending(t *testing.T) {
	order, err := NewOrder(validSpec())
	require.NoError(t, err)

	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, "64.00", order.Total.StringFixed(2))
	assert.Equal(t, 1, order.LineCount())
}

func TestNewOrder_RejectsEmptyLines(t *testing.T) {
	spec := validSpec()
	spec.Lines = nil

	_, err := NewOrder(spec)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestNewOrder_RejectsMismatchedTotals(t *testing.T) {
	spec := validSpec()
	spec.Total = decimal.NewFromFloat(99.00)

	_, err := NewOrder(spec)
	assert.ErrorIs(t, err, ErrTotalMismatch)

	spec = validSpec()
	spec.Subtotal = decimal.NewFromFloat(40.00)
	_, err = NewOrder(spec)
	assert.ErrorIs(t, err, ErrTotalMismatch)
}

func TestNewOrder_RejectsInvalidLines(t *testing.T) {
	spec := validSpec()
	spec.Lines[0].Quantity = 0

	_, err := NewOrder(spec)
	assert.ErrorIs(t, err, ErrInvalidLine)
}

func TestNewOrder_CopiesLinesFromSpec(t *testing.T) {
	spec := validSpec()
	order, err := NewOrder(spec)
	require.NoError(t, err)

	spec.Lines[0].Quantity = 99
	assert.Equal(t, 2, order.Lines()[0].Quantity, "mutating the spec must not reach the order")

	lines := order.Lines()
	lines[0].Quantity = 7
	assert.Equal(t, 2, order.Lines()[0].Quantity, "mutating the returned slice must not reach the order")
}

func TestOrder_SnapshotSurvivesPriceChanges(t *testing.T) {
	order, err := NewOrder(validSpec())
	require.NoError(t, err)

	line := order.Lines()[0]
	assert.Equal(t, "Widget", line.Name)
	assert.Equal(t, "25.00", line.UnitPrice.StringFixed(2))
	assert.Equal(t, "50.00", line.Subtotal().StringFixed(2))
}

func TestTransition_FollowsTheTable(t *testing.T) {
	order, err := NewOrder(validSpec())
	require.NoError(t, err)

	require.NoError(t, order.Transition(StatusShipped))
	require.NoError(t, order.Transition(StatusDelivered))
	assert.True(t, order.IsTerminal())

	assert.ErrorIs(t, order.Transition(StatusShipped), ErrInvalidTransition)
}

func TestTransition_RejectsSkippingAhead(t *testing.T) {
	order, err := NewOrder(validSpec())
	require.NoError(t, err)

	assert.ErrorIs(t, order.Transition(StatusDelivered), ErrInvalidTransition)
	assert.Equal(t, StatusPending, order.Status)
}

func TestTransition_RejectsUnknownStatus(t *testing.T) {
	order, err := NewOrder(validSpec())
	require.NoError(t, err)

	assert.ErrorIs(t, order.Transition(Status("refunded")), ErrInvalidStatus)
}

func TestCancel_OnlyWhilePending(t *testing.T) {
	order, err := NewOrder(validSpec())
	require.NoError(t, err)

	require.NoError(t, order.Cancel())
	assert.Equal(t, StatusCancelled, order.Status)
	assert.True(t, order.IsTerminal())

	shipped, err := NewOrder(validSpec())
	require.NoError(t, err)
	require.NoError(t, shipped.Transition(StatusShipped))
	assert.ErrorIs(t, shipped.Cancel(), ErrOrderNotCancelable)
}

func TestRestore_ChecksStatusOnly(t *testing.T) {
	order, err := Restore(42, validSpec(), StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, StatusShipped, order.Status)

	_, err = Restore(42, validSpec(), Status("bogus"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNewOrder_ComparesLineSumAtCentPrecision(t *testing.T) {
	spec := Spec{
		CustomerID: 1,
		Lines: []Line{
			{ProductID: 1, Name: "Widget", UnitPrice: decimal.NewFromFloat(19.999), Quantity: 1},
		},
		Subtotal: decimal.NewFromFloat(20.00),
		Tax:      decimal.NewFromFloat(1.60),
		Shipping: decimal.NewFromFloat(10.00),
		Total:    decimal.NewFromFloat(31.60),
	}

	order, err := NewOrder(spec)
	require.NoError(t, err)
	assert.Equal(t, "20.00", order.Subtotal.StringFixed(2))
	assert.True(t, order.Lines()[0].UnitPrice.Equal(decimal.NewFromFloat(19.999)),
		"the snapshot keeps the price as captured")
}
