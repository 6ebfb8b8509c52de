package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Status enumerates order progression.
type Status string

const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var (
	ErrEmptyOrder         = errors.New("order must contain at least one line")
	ErrInvalidCustomer    = errors.New("customer id must be greater than zero")
	ErrInvalidLine        = errors.New("order line must have a positive quantity and non-negative price")
	ErrInvalidStatus      = errors.New("order status is invalid")
	ErrInvalidTransition  = errors.New("order status transition is not allowed")
	ErrTotalMismatch      = errors.New("order totals do not add up")
	ErrOrderNotCancelable = errors.New("order can no longer be cancelled")
)

// transitions is the closed set of allowed status moves. Delivered and
// cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// Line is one snapshotted order position. Name and unit price are captured
// at build time: later catalog changes never alter a placed order.
type Line struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal returns unit price times quantity for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Spec is the configuration an Order is built from. It replaces a chained
// builder: callers populate the struct and hand it to NewOrder, which
// validates and deep-copies everything.
type Spec struct {
	CustomerID int64
	Lines      []Line
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Shipping   decimal.Decimal
	Total      decimal.Decimal
	PlacedAt   time.Time
}

// Order is the immutable record of a completed checkout. The line snapshot
// and monetary amounts are fixed at build time; only the status moves, and
// only along the transition table.
type Order struct {
	ID         int64
	CustomerID int64
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Shipping   decimal.Decimal
	Total      decimal.Decimal
	Status     Status
	PlacedAt   time.Time

	lines []Line
}

// NewOrder validates the spec and freezes it into an Order with status
// pending. The lines are copied, never aliased, so later mutation of the
// spec cannot reach the order.
func NewOrder(spec Spec) (*Order, error) {
	if spec.CustomerID <= 0 {
		return nil, ErrInvalidCustomer
	}
	if len(spec.Lines) == 0 {
		return nil, ErrEmptyOrder
	}
	sum := decimal.Zero
	for _, line := range spec.Lines {
		if line.Quantity <= 0 || line.UnitPrice.IsNegative() {
			return nil, ErrInvalidLine
		}
		sum = sum.Add(line.Subtotal())
	}
	// Line prices may carry more precision than the monetary amounts, which
	// are fixed at two places; the cross-check compares at that boundary.
	if !sum.Round(2).Equal(spec.Subtotal) {
		return nil, ErrTotalMismatch
	}
	if !spec.Subtotal.Add(spec.Tax).Add(spec.Shipping).Equal(spec.Total) {
		return nil, ErrTotalMismatch
	}
	placedAt := spec.PlacedAt
	if placedAt.IsZero() {
		placedAt = time.Now().UTC()
	}
	return &Order{
		CustomerID: spec.CustomerID,
		Subtotal:   spec.Subtotal,
		Tax:        spec.Tax,
		Shipping:   spec.Shipping,
		Total:      spec.Total,
		Status:     StatusPending,
		PlacedAt:   placedAt,
		lines:      append([]Line{}, spec.Lines...),
	}, nil
}

// Restore rebuilds a persisted order without re-running checkout-time
// validation beyond the status check.
func Restore(id int64, spec Spec, status Status) (*Order, error) {
	if !IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return &Order{
		ID:         id,
		CustomerID: spec.CustomerID,
		Subtotal:   spec.Subtotal,
		Tax:        spec.Tax,
		Shipping:   spec.Shipping,
		Total:      spec.Total,
		Status:     status,
		PlacedAt:   spec.PlacedAt,
		lines:      append([]Line{}, spec.Lines...),
	}, nil
}

// Lines returns a defensive copy of the snapshot.
func (o *Order) Lines() []Line {
	return append([]Line{}, o.lines...)
}

// LineCount returns the number of snapshotted positions.
func (o *Order) LineCount() int {
	return len(o.lines)
}

// Transition moves the order to the next status when the transition table
// allows it.
func (o *Order) Transition(next Status) error {
	if !IsValidStatus(next) {
		return ErrInvalidStatus
	}
	for _, allowed := range transitions[o.Status] {
		if allowed == next {
			o.Status = next
			return nil
		}
	}
	return ErrInvalidTransition
}

// Cancel is a convenience transition used by the cancellation flow.
func (o *Order) Cancel() error {
	if err := o.Transition(StatusCancelled); err != nil {
		return ErrOrderNotCancelable
	}
	return nil
}

// IsTerminal reports whether no further transition is possible.
func (o *Order) IsTerminal() bool {
	return len(transitions[o.Status]) == 0
}

// IsValidStatus reports membership in the closed status set.
func IsValidStatus(status Status) bool {
	_, ok := transitions[status]
	return ok
}
