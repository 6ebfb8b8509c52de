package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
)

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// IdempotencyStore keeps checkout deduplication records in memory.
type IdempotencyStore struct {
	mu      sync.RWMutex
	records map[string]ports.IdempotencyRecord
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{records: map[string]ports.IdempotencyRecord{}}
}

func (s *IdempotencyStore) Get(_ context.Context, key string) (*ports.IdempotencyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[key]
	if !ok {
		return nil, ports.ErrKeyNotFound
	}
	return &record, nil
}

func (s *IdempotencyStore) Put(_ context.Context, record ports.IdempotencyRecord) error {
	if record.Key == "" {
		return errors.New("idempotency key is empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Key] = record
	return nil
}
