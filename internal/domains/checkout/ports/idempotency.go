package ports

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("idempotency key not found")

// IdempotencyRecord binds a client-supplied key to the request fingerprint
// it was first used with and the order that request produced.
type IdempotencyRecord struct {
	Key         string
	Fingerprint string
	OrderID     int64
}

// IdempotencyStore remembers which checkout requests already completed so a
// retried PlaceOrder returns the original order instead of placing a second one.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (*IdempotencyRecord, error)
	Put(ctx context.Context, record IdempotencyRecord) error
}
