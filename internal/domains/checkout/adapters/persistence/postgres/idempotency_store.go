package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
)

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// IdempotencyStore persists checkout deduplication records in PostgreSQL.
type IdempotencyStore struct {
	db *gorm.DB
}

// NewIdempotencyStore wires a PostgreSQL-backed key store. Caller manages DB lifecycle.
func NewIdempotencyStore(db *gorm.DB) *IdempotencyStore {
	store := &IdempotencyStore{db: db}
	if db != nil {
		_ = db.AutoMigrate(&idempotencyRecord{})
	}
	return store
}

type idempotencyRecord struct {
	Key         string    `gorm:"primaryKey;column:key;type:varchar(128)"`
	Fingerprint string    `gorm:"column:fingerprint;type:varchar(64)"`
	OrderID     int64     `gorm:"column:order_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (idempotencyRecord) TableName() string { return "checkout_idempotency_keys" }

func (s *IdempotencyStore) Get(ctx context.Context, key string) (*ports.IdempotencyRecord, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var record idempotencyRecord
	if err := s.db.WithContext(ctx).First(&record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrKeyNotFound
		}
		return nil, err
	}
	return &ports.IdempotencyRecord{Key: record.Key, Fingerprint: record.Fingerprint, OrderID: record.OrderID}, nil
}

// Put writes the record once; a concurrent duplicate insert keeps the first
// write, which is the record the winning checkout produced.
func (s *IdempotencyStore) Put(ctx context.Context, record ports.IdempotencyRecord) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	if record.Key == "" {
		return errors.New("idempotency key is empty")
	}
	row := idempotencyRecord{Key: record.Key, Fingerprint: record.Fingerprint, OrderID: record.OrderID}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "key"}}, DoNothing: true}).
		Create(&row).Error
}

func (s *IdempotencyStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres idempotency store not configured")
	}
	return nil
}
