//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/ports"
	"github.com/mohammedHatemm/go-shop-api/internal/platform/migrations"
)

func setupCustomersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
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

func TestRepository_SaveRoundTripsCustomerWithCart(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCustomersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	customer, err := domain.NewCustomer(0, "John Doe", "john@example.com")
	require.NoError(t, err)
	customer.SetAddress(&domain.Address{Street: "123 Main St", City: "New York", State: "NY", ZipCode: "10001"})
	require.NoError(t, customer.Cart.AddLine(1, 2))
	require.NoError(t, customer.Cart.AddLine(2, 1))

	saved, err := repo.Save(ctx, customer)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", fetched.Name)
	require.NotNil(t, fetched.Address)
	assert.Equal(t, "New York", fetched.Address.City)
	assert.Equal(t, 2, fetched.Cart.LineCount(), "array columns must round-trip the cart")
	assert.Equal(t, 2, fetched.Cart.Quantity(1))
}

func TestRepository_SavePersistsCartMutations(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCustomersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	customer, err := domain.NewCustomer(0, "Jane Smith", "jane@example.com")
	require.NoError(t, err)
	require.NoError(t, customer.Cart.AddLine(1, 2))
	saved, err := repo.Save(ctx, customer)
	require.NoError(t, err)

	require.NoError(t, saved.Cart.AddLine(1, 3))
	saved.Cart.RemoveLine(99)
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)

	assert.Equal(t, 1, updated.Cart.LineCount())
	assert.Equal(t, 5, updated.Cart.Quantity(1), "merged quantity must persist")

	updated.Cart.Clear()
	cleared, err := repo.Save(ctx, updated)
	require.NoError(t, err)
	assert.True(t, cleared.Cart.IsEmpty())
}

func TestRepository_AddressIsOptional(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCustomersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	customer, err := domain.NewCustomer(0, "No Address", "nobody@example.com")
	require.NoError(t, err)
	saved, err := repo.Save(ctx, customer)
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Address)

	fetched.SetAddress(&domain.Address{Street: "456 Oak Ave", City: "Los Angeles", State: "CA", ZipCode: "90001"})
	withAddress, err := repo.Save(ctx, fetched)
	require.NoError(t, err)
	require.NotNil(t, withAddress.Address)

	withAddress.SetAddress(nil)
	clearedAgain, err := repo.Save(ctx, withAddress)
	require.NoError(t, err)
	assert.Nil(t, clearedAgain.Address)
}

func TestRepository_GetByIDNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCustomersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	_, err := repo.GetByID(context.Background(), 4242)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
