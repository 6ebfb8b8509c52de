package migrations

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&customerRecord{},
		&orderRecord{},
		&idempotencyRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID        int64           `gorm:"primaryKey;column:id;autoIncrement"`
	Name      string          `gorm:"column:name"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2)"`
	Category  string          `gorm:"column:category;type:varchar(64);index"`
	Stock     int             `gorm:"column:stock"`
	CreatedAt time.Time       `gorm:"column:created_at;index"`
	UpdatedAt time.Time       `gorm:"column:updated_at;index"`
}

func (productRecord) TableName() string { return "products" }

// Customer schema mirrors the customers Postgres adapter. Cart lines are
// flattened into parallel array columns.
type customerRecord struct {
	ID             int64         `gorm:"primaryKey;column:id;autoIncrement"`
	Name           string        `gorm:"column:name"`
	Email          string        `gorm:"column:email;index"`
	Street         string        `gorm:"column:street"`
	City           string        `gorm:"column:city"`
	State          string        `gorm:"column:state"`
	ZipCode        string        `gorm:"column:zip_code"`
	HasAddress     bool          `gorm:"column:has_address"`
	CartProductIDs pq.Int64Array `gorm:"column:cart_product_ids;type:bigint[]"`
	CartQuantities pq.Int64Array `gorm:"column:cart_quantities;type:bigint[]"`
	CreatedAt      time.Time     `gorm:"column:created_at;index"`
	UpdatedAt      time.Time     `gorm:"column:updated_at;index"`
}

func (customerRecord) TableName() string { return "customers" }

// Order schema mirrors the checkout Postgres adapter. The line snapshot is
// an immutable jsonb document.
type orderRecord struct {
	ID         int64           `gorm:"primaryKey;column:id;autoIncrement"`
	CustomerID int64           `gorm:"column:customer_id;index"`
	Subtotal   decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2)"`
	Tax        decimal.Decimal `gorm:"column:tax;type:numeric(12,2)"`
	Shipping   decimal.Decimal `gorm:"column:shipping;type:numeric(12,2)"`
	Total      decimal.Decimal `gorm:"column:total;type:numeric(12,2)"`
	Status     string          `gorm:"column:status;type:varchar(16);index"`
	PlacedAt   time.Time       `gorm:"column:placed_at;index"`
	Lines      []byte          `gorm:"column:lines;type:jsonb"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Idempotency schema mirrors the checkout key store.
type idempotencyRecord struct {
	Key         string    `gorm:"primaryKey;column:key;type:varchar(128)"`
	Fingerprint string    `gorm:"column:fingerprint;type:varchar(64)"`
	OrderID     int64     `gorm:"column:order_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (idempotencyRecord) TableName() string { return "checkout_idempotency_keys" }
