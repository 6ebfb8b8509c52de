package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists customers and their carts in PostgreSQL using GORM.
// Cart lines are flattened into parallel array columns; positions align.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&customerRecord{})
	}
	return repo
}

// customerRecord maps the customer aggregate, cart included, to a relational table.
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

// Save inserts or updates a customer together with its cart.
func (r *Repository) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.New("customer is nil")
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(customer)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":             record.Name,
				"email":            record.Email,
				"street":           record.Street,
				"city":             record.City,
				"state":            record.State,
				"zip_code":         record.ZipCode,
				"has_address":      record.HasAddress,
				"cart_product_ids": record.CartProductIDs,
				"cart_quantities":  record.CartQuantities,
				"updated_at":       gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a customer by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record customerRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain()
}

// List returns all customers ordered by identifier.
func (r *Repository) List(ctx context.Context) ([]*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []customerRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	customers := make([]*domain.Customer, 0, len(records))
	for i := range records {
		customer, err := records[i].toDomain()
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres customer repository not configured")
	}
	return nil
}

func toRecord(customer *domain.Customer) customerRecord {
	record := customerRecord{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
	}
	if customer.Address != nil {
		record.HasAddress = true
		record.Street = customer.Address.Street
		record.City = customer.Address.City
		record.State = customer.Address.State
		record.ZipCode = customer.Address.ZipCode
	}
	lines := customer.Cart.Lines()
	record.CartProductIDs = make(pq.Int64Array, 0, len(lines))
	record.CartQuantities = make(pq.Int64Array, 0, len(lines))
	for _, line := range lines {
		record.CartProductIDs = append(record.CartProductIDs, line.ProductID)
		record.CartQuantities = append(record.CartQuantities, int64(line.Quantity))
	}
	return record
}

func (r customerRecord) toDomain() (*domain.Customer, error) {
	if len(r.CartProductIDs) != len(r.CartQuantities) {
		return nil, errors.New("cart columns are misaligned")
	}
	lines := make([]domain.CartLine, 0, len(r.CartProductIDs))
	for i := range r.CartProductIDs {
		lines = append(lines, domain.CartLine{ProductID: r.CartProductIDs[i], Quantity: int(r.CartQuantities[i])})
	}
	cart, err := domain.RestoreCart(lines)
	if err != nil {
		return nil, err
	}
	customer := &domain.Customer{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
		Cart:  cart,
	}
	if r.HasAddress {
		customer.SetAddress(&domain.Address{Street: r.Street, City: r.City, State: r.State, ZipCode: r.ZipCode})
	}
	return customer, nil
}
