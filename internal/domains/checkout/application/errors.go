package application

import (
	"errors"
	"fmt"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid checkout input")
	// ErrEmptyCart signals an attempt to place an order from an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNotEnoughStock signals the cart asks for more units than the catalog has.
	ErrNotEnoughStock = errors.New("not enough stock")
	// ErrStatusConflict signals a status change the transition table forbids.
	ErrStatusConflict = errors.New("order status conflict")
	// ErrIdempotencyConflict signals an idempotency key reused with a different cart.
	ErrIdempotencyConflict = errors.New("idempotency key reused with a different request")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrOrderNotCancelable):
		return fmt.Errorf("%w: %w", ErrStatusConflict, err)
	case errors.Is(err, domain.ErrEmptyOrder):
		return fmt.Errorf("%w: %w", ErrEmptyCart, err)
	case errors.Is(err, domain.ErrInvalidCustomer),
		errors.Is(err, domain.ErrInvalidLine),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrTotalMismatch):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
