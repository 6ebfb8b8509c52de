package application

import (
	"errors"
	"fmt"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/domain"
)

var (
	// ErrInvalidInput signals the request violated a customer or cart invariant.
	ErrInvalidInput = errors.New("invalid customer input")
	// ErrNotEnoughStock signals the requested cart quantity exceeds catalog availability.
	ErrNotEnoughStock = errors.New("not enough stock for requested quantity")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyCustomerName) ||
		errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrNonPositiveQuantity) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
