package checkout

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	checkouttypes "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/application/types"
	checkoutports "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
	checkoutactivities "github.com/mohammedHatemm/go-shop-api/internal/platform/temporal/activities/checkout"
)

const (
	// PlaceOrderWorkflowName is the public identifier for registering the workflow.
	PlaceOrderWorkflowName = "checkout.workflows.PlaceOrder"
	// CheckoutTaskQueue is the queue consumed by the worker processing checkout workflows.
	CheckoutTaskQueue = "CHECKOUT"
)

// PlaceOrderWorkflowInput captures the payload required to place an order durably.
type PlaceOrderWorkflowInput struct {
	Command checkoutports.PlaceOrderInput
	TraceID string
}

// PlaceOrderWorkflow places the order and then notifies fulfillment. The
// placement activity is the commit point; notification failures retry
// without re-placing the order.
func PlaceOrderWorkflow(ctx workflow.Context, input PlaceOrderWorkflowInput) (*checkouttypes.OrderProjection, error) {
	logger := workflow.GetLogger(ctx)
	customerID := input.Command.CustomerID
	logger.Info("PlaceOrderWorkflow started", withTraceID(input.TraceID, "customerId", customerID)...)

	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var projection checkouttypes.OrderProjection
	if err := workflow.ExecuteActivity(ctx, checkoutactivities.PlaceOrderActivityName, input.Command).Get(ctx, &projection); err != nil {
		logger.Error("PlaceOrderWorkflow failed", withTraceID(input.TraceID, "customerId", customerID, "error", err)...)
		return nil, err
	}

	if err := workflow.ExecuteActivity(ctx, checkoutactivities.NotifyFulfillmentActivityName, projection).Get(ctx, nil); err != nil {
		// The order is placed; fulfillment catches up out of band.
		logger.Error("fulfillment notification failed", withTraceID(input.TraceID, "orderId", projection.ID, "error", err)...)
	}

	logger.Info("PlaceOrderWorkflow completed", withTraceID(input.TraceID, "orderId", projection.ID)...)
	return &projection, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
