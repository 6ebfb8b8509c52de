// Package fulfillment calls the downstream fulfillment webhook that picks,
// packs, and ships placed orders.
package fulfillment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	checkoutports "github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
)

var _ checkoutports.FulfillmentNotifier = (*Client)(nil)

// Client posts order-placed notifications to the fulfillment system.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NotifyOption configures a single notification request.
type NotifyOption func(*notifyOptions)

type notifyOptions struct {
	idempotencyKey string
}

// WithIdempotencyKey sets the Idempotency-Key header for the request.
func WithIdempotencyKey(key string) NotifyOption {
	return func(opts *notifyOptions) {
		opts.idempotencyKey = strings.TrimSpace(key)
	}
}

// NewClient instantiates the fulfillment client with sane defaults.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("fulfillment base URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}, nil
}

type orderPlacedPayload struct {
	OrderID    int64  `json:"orderId"`
	CustomerID int64  `json:"customerId"`
	Total      string `json:"total"`
}

// NotifyOrderPlaced pushes the order reference downstream. The receiver
// deduplicates by order ID, so redelivery is harmless.
func (c *Client) NotifyOrderPlaced(ctx context.Context, orderID, customerID int64, total decimal.Decimal) error {
	return c.Notify(ctx, orderID, customerID, total)
}

// Notify is NotifyOrderPlaced with per-request options.
func (c *Client) Notify(ctx context.Context, orderID, customerID int64, total decimal.Decimal, optFns ...NotifyOption) error {
	if c == nil || c.httpClient == nil {
		return errors.New("fulfillment client not configured")
	}
	if orderID <= 0 {
		return errors.New("fulfillment order reference is required")
	}
	var opts notifyOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	body, err := json.Marshal(orderPlacedPayload{
		OrderID:    orderID,
		CustomerID: customerID,
		Total:      total.StringFixed(2),
	})
	if err != nil {
		return fmt.Errorf("encode fulfillment payload: %w", err)
	}
	url := fmt.Sprintf("%s/orders/%d/placed", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build fulfillment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if opts.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", opts.idempotencyKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call fulfillment API: %w", err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusOK, resp.StatusCode == http.StatusAccepted, resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode == http.StatusConflict:
		// Already acknowledged for this order; treat redelivery as success.
		return nil
	default:
		return fmt.Errorf("fulfillment API unexpected status: %s", resp.Status)
	}
}
