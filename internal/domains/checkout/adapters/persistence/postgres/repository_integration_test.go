//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
	"github.com/mohammedHatemm/go-shop-api/internal/platform/migrations"
)

func setupCheckoutPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("shop_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func placedOrder(t *testing.T, customerID int64) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(domain.Spec{
		CustomerID: customerID,
		Lines: []domain.Line{
			{ProductID: 1, Name: "Widget", UnitPrice: decimal.NewFromFloat(25.00), Quantity: 2},
		},
		Subtotal: decimal.NewFromFloat(50.00),
		Tax:      decimal.NewFromFloat(4.00),
		Shipping: decimal.NewFromFloat(10.00),
		Total:    decimal.NewFromFloat(64.00),
		PlacedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return order
}

func TestRepository_SaveRoundTripsLineSnapshot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCheckoutPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, placedOrder(t, 7))
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, fetched.Status)
	require.Equal(t, 1, fetched.LineCount())
	line := fetched.Lines()[0]
	assert.Equal(t, "Widget", line.Name)
	assert.Equal(t, "25.00", line.UnitPrice.StringFixed(2), "jsonb snapshot must keep captured prices")
	assert.Equal(t, "64.00", fetched.Total.StringFixed(2))
}

func TestRepository_SaveOnlyUpdatesStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCheckoutPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, placedOrder(t, 7))
	require.NoError(t, err)

	require.NoError(t, saved.Transition(domain.StatusShipped))
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, domain.StatusShipped, updated.Status)
	assert.Equal(t, "64.00", updated.Total.StringFixed(2), "monetary columns are immutable after first write")
}

func TestRepository_ListByCustomerFilters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCheckoutPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, placedOrder(t, 7))
	require.NoError(t, err)
	_, err = repo.Save(ctx, placedOrder(t, 7))
	require.NoError(t, err)
	_, err = repo.Save(ctx, placedOrder(t, 8))
	require.NoError(t, err)

	mine, err := repo.ListByCustomer(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = repo.GetByID(ctx, 4242)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestIdempotencyStore_FirstWriteWins(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCheckoutPostgresContainer(t)
	defer cleanup()

	store := NewIdempotencyStore(db)
	ctx := context.Background()

	_, err := store.Get(ctx, "key-1")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)

	require.NoError(t, store.Put(ctx, ports.IdempotencyRecord{Key: "key-1", Fingerprint: "abc", OrderID: 1}))
	require.NoError(t, store.Put(ctx, ports.IdempotencyRecord{Key: "key-1", Fingerprint: "def", OrderID: 2}))

	record, err := store.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "abc", record.Fingerprint, "duplicate insert must keep the first write")
	assert.Equal(t, int64(1), record.OrderID)
}
