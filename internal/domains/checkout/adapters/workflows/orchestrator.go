package workflows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	checkouttypes "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/application/types"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
	checkoutworkflows "github.com/mohammedHatemm/go-shop-api/internal/platform/temporal/workflows/checkout"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalCheckoutWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineCheckoutWorkflows)(nil)
)

// TemporalCheckoutWorkflows starts checkout workflows on a Temporal cluster.
type TemporalCheckoutWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalCheckoutWorkflows wires a Temporal client into the orchestrator.
func NewTemporalCheckoutWorkflows(c client.Client) *TemporalCheckoutWorkflows {
	return &TemporalCheckoutWorkflows{client: c, taskQueue: checkoutworkflows.CheckoutTaskQueue}
}

// PlaceOrder starts the durable checkout workflow. When the idempotency key
// already started a workflow, the original run's result is returned instead
// of starting a duplicate.
func (o *TemporalCheckoutWorkflows) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal checkout workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := buildPlaceOrderWorkflowID(input, traceComponent)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		checkoutworkflows.PlaceOrderWorkflow,
		checkoutworkflows.PlaceOrderWorkflowInput{Command: input, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) && strings.TrimSpace(input.IdempotencyKey) != "" {
			existingRun := o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
			var projection checkouttypes.OrderProjection
			if err := existingRun.Get(ctx, &projection); err != nil {
				return nil, err
			}
			return projection.ToDomain()
		}
		return nil, err
	}
	var projection checkouttypes.OrderProjection
	if err := run.Get(ctx, &projection); err != nil {
		return nil, err
	}
	return projection.ToDomain()
}

// InlineCheckoutWorkflows executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlineCheckoutWorkflows struct {
	service ports.Service
}

// NewInlineCheckoutWorkflows wraps the checkout service for synchronous execution.
func NewInlineCheckoutWorkflows(service ports.Service) *InlineCheckoutWorkflows {
	return &InlineCheckoutWorkflows{service: service}
}

// PlaceOrder delegates to the application service without durable orchestration.
func (o *InlineCheckoutWorkflows) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline checkout workflows not configured")
	}
	return o.service.PlaceOrder(ctx, input)
}

func buildPlaceOrderWorkflowID(input ports.PlaceOrderInput, traceComponent string) string {
	if key := strings.TrimSpace(input.IdempotencyKey); key != "" {
		return fmt.Sprintf("place-order-idem-%s", hashIdempotencyKey(key))
	}
	return fmt.Sprintf("place-order-%d-%s", input.CustomerID, traceComponent)
}

func hashIdempotencyKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	// Use the first 16 hex chars to keep workflow IDs readable while remaining deterministic.
	return hex.EncodeToString(sum[:8])
}

func workflowTraceComponent(ctx context.Context) string {
	if traceComponent := workflowTraceID(ctx); traceComponent != "" {
		return traceComponent
	}
	return "fallback-" + uuid.NewString()
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
