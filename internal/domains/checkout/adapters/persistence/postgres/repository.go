package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM. The line snapshot is
// stored as a jsonb document: lines are immutable once written, so they are
// never queried column-wise.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{})
	}
	return repo
}

type orderLineRecord struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type orderRecord struct {
	ID         int64             `gorm:"primaryKey;column:id;autoIncrement"`
	CustomerID int64             `gorm:"column:customer_id;index"`
	Subtotal   decimal.Decimal   `gorm:"column:subtotal;type:numeric(12,2)"`
	Tax        decimal.Decimal   `gorm:"column:tax;type:numeric(12,2)"`
	Shipping   decimal.Decimal   `gorm:"column:shipping;type:numeric(12,2)"`
	Total      decimal.Decimal   `gorm:"column:total;type:numeric(12,2)"`
	Status     string            `gorm:"column:status;type:varchar(16);index"`
	PlacedAt   time.Time         `gorm:"column:placed_at;index"`
	Lines      []orderLineRecord `gorm:"column:lines;type:jsonb;serializer:json"`
	CreatedAt  time.Time         `gorm:"column:created_at"`
	UpdatedAt  time.Time         `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Save inserts a new order or updates the status of an existing one. The
// monetary columns and the line snapshot never change after the first write.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record, err := toRecord(order)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"status":     record.Status,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain()
}

// ListByCustomer returns one customer's orders, oldest first.
func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records, "customer_id = ?", customerID).Error; err != nil {
		return nil, err
	}
	return toDomainList(records)
}

// List returns every order, oldest first.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records)
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) (orderRecord, error) {
	lines := order.Lines()
	lineRecords := make([]orderLineRecord, 0, len(lines))
	for _, line := range lines {
		lineRecords = append(lineRecords, orderLineRecord{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Quantity:  line.Quantity,
		})
	}
	return orderRecord{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Subtotal:   order.Subtotal,
		Tax:        order.Tax,
		Shipping:   order.Shipping,
		Total:      order.Total,
		Status:     string(order.Status),
		PlacedAt:   order.PlacedAt,
		Lines:      lineRecords,
	}, nil
}

func (r orderRecord) toDomain() (*domain.Order, error) {
	lines := make([]domain.Line, 0, len(r.Lines))
	for _, line := range r.Lines {
		price, err := decimal.NewFromString(line.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.Line{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: price,
			Quantity:  line.Quantity,
		})
	}
	return domain.Restore(r.ID, domain.Spec{
		CustomerID: r.CustomerID,
		Lines:      lines,
		Subtotal:   r.Subtotal,
		Tax:        r.Tax,
		Shipping:   r.Shipping,
		Total:      r.Total,
		PlacedAt:   r.PlacedAt,
	}, domain.Status(r.Status))
}

func toDomainList(records []orderRecord) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		order, err := records[i].toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
