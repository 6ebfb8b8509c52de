package ports

import (
	"context"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/domain"
)

// WorkflowOrchestrator exposes durable checkout operations. Implementations
// either start a Temporal workflow or run the service inline.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
}
