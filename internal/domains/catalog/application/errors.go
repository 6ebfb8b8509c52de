package application

import (
	"errors"
	"fmt"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/domain"
)

var (
	// ErrInvalidInput signals the request violated a catalog invariant.
	ErrInvalidInput = errors.New("invalid product input")
	// ErrStockConflict signals the requested stock movement cannot be satisfied.
	ErrStockConflict = errors.New("stock conflict")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return fmt.Errorf("%w: %w", ErrStockConflict, err)
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrSubCentPrice),
		errors.Is(err, domain.ErrNegativeStock),
		errors.Is(err, domain.ErrNonPositiveAmount):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
