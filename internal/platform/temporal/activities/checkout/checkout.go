package checkout

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	checkouttypes "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/application/types"
	checkoutports "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
)

const (
	// PlaceOrderActivityName converts the cart into a persisted order.
	PlaceOrderActivityName = "checkout.activities.PlaceOrder"
	// NotifyFulfillmentActivityName pushes a placed order to fulfillment.
	NotifyFulfillmentActivityName = "checkout.activities.NotifyFulfillment"
)

// Activities groups activities that operate on the checkout bounded context.
type Activities struct {
	service  checkoutports.Service
	notifier checkoutports.FulfillmentNotifier
}

// NewActivities wires the checkout collaborators into the Temporal activities bundle.
// service should be constructed without a notifier to avoid duplicate fulfillment calls.
func NewActivities(service checkoutports.Service, notifier checkoutports.FulfillmentNotifier) *Activities {
	return &Activities{service: service, notifier: notifier}
}

// PlaceOrder runs the checkout use case and returns the order projection.
// The service's own idempotency handling makes activity retries safe.
func (a *Activities) PlaceOrder(ctx context.Context, input checkoutports.PlaceOrderInput) (*checkouttypes.OrderProjection, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("place order activity not initialized", "customerId", input.CustomerID)
		return nil, errors.New("place order activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "customerId", input.CustomerID)
	order, err := a.service.PlaceOrder(ctx, input)
	if err != nil {
		logger.Error("PlaceOrder activity failed", "customerId", input.CustomerID, "error", err)
		return nil, err
	}
	logger.Info("PlaceOrder activity completed", "orderId", order.ID)
	return checkouttypes.ProjectOrder(order), nil
}

// NotifyFulfillment pushes the placed order downstream. The heartbeat marks
// completion so a retried attempt after a delivered notification is a no-op.
func (a *Activities) NotifyFulfillment(ctx context.Context, projection checkouttypes.OrderProjection) error {
	logger := activity.GetLogger(ctx)
	if a == nil {
		logger.Error("fulfillment activity not initialized", "orderId", projection.ID)
		return errors.New("fulfillment activity not initialized")
	}
	if a.notifier == nil {
		logger.Info("fulfillment notifier not configured; skipping", "orderId", projection.ID)
		return nil
	}

	var hb notifyHeartbeat
	if activity.HasHeartbeatDetails(ctx) {
		_ = activity.GetHeartbeatDetails(ctx, &hb)
	}
	if hb.Completed {
		logger.Info("NotifyFulfillment already completed in prior attempt; skipping", "orderId", projection.ID)
		return nil
	}

	logger.Info("NotifyFulfillment activity started", "orderId", projection.ID)
	if err := a.notifier.NotifyOrderPlaced(ctx, projection.ID, projection.CustomerID, projection.Total); err != nil {
		logger.Error("NotifyFulfillment activity failed", "orderId", projection.ID, "error", err)
		return err
	}
	activity.RecordHeartbeat(ctx, notifyHeartbeat{Completed: true})
	logger.Info("NotifyFulfillment activity completed", "orderId", projection.ID)
	return nil
}

type notifyHeartbeat struct {
	Completed bool
}
