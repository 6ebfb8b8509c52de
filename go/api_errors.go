package shopserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/application"
	catalogports "github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/ports"
	checkoutapp "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/application"
	checkoutports "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
	customersapp "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/application"
	customersports "github.com/mohammedHatemm/go-shop-api/internal/domains/customers/ports"
	apierrors "github.com/mohammedHatemm/go-shop-api/internal/shared/errors"
)

// responder maps application errors onto RFC 7807 problem responses.
var responder = apierrors.NewChainedResponder("", mapServiceError)

func mapServiceError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, catalogports.ErrNotFound),
		errors.Is(err, customersports.ErrNotFound),
		errors.Is(err, checkoutports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, customersapp.ErrInvalidInput),
		errors.Is(err, checkoutapp.ErrInvalidInput):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return apierrors.ErrUnprocessable.WithDetail(err.Error()), true
	case errors.Is(err, catalogapp.ErrStockConflict),
		errors.Is(err, customersapp.ErrNotEnoughStock),
		errors.Is(err, checkoutapp.ErrNotEnoughStock),
		errors.Is(err, checkoutapp.ErrStatusConflict),
		errors.Is(err, checkoutapp.ErrIdempotencyConflict):
		return apierrors.ErrConflict.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

// respondProblem sends a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	responder.Respond(c, problem)
}

// respondError wraps a plain error for a known HTTP status.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	case http.StatusConflict:
		problem = apierrors.ErrConflict.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}

// respondServiceError routes application errors through the mapper chain.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}
