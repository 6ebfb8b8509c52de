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

	"github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/catalog/ports"
	"github.com/mohammedHatemm/go-shop-api/internal/platform/migrations"
)

func setupCatalogPostgresContainer(t *testing.T) (*gorm.DB, func()) {
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

func newWidget(t *testing.T, stock int) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(0, "Widget", decimal.NewFromFloat(9.99), "Gadgets", stock)
	require.NoError(t, err)
	return product
}

func TestRepository_SaveAssignsIDAndRoundTrips(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newWidget(t, 5))
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", fetched.Name)
	assert.True(t, fetched.UnitPrice.Equal(decimal.NewFromFloat(9.99)), "numeric column must keep cents exactly")
	assert.Equal(t, 5, fetched.Stock)
}

func TestRepository_SaveUpdatesExistingRow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newWidget(t, 5))
	require.NoError(t, err)

	require.NoError(t, saved.SetPrice(decimal.NewFromFloat(12.50)))
	require.NoError(t, saved.ReduceStock(2))
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, updated.ID)
	assert.True(t, updated.UnitPrice.Equal(decimal.NewFromFloat(12.50)))
	assert.Equal(t, 3, updated.Stock)
}

func TestRepository_GetByIDsFailsOnMissingProduct(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newWidget(t, 5))
	require.NoError(t, err)

	products, err := repo.GetByIDs(ctx, []int64{saved.ID})
	require.NoError(t, err)
	assert.Len(t, products, 1)

	_, err = repo.GetByIDs(ctx, []int64{saved.ID, saved.ID + 1000})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_ListOrdersByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	names := []string{"Widget", "Gadget", "Gizmo"}
	for _, name := range names {
		product, err := domain.NewProduct(0, name, decimal.NewFromInt(10), "", 1)
		require.NoError(t, err)
		_, err = repo.Save(ctx, product)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Widget", list[0].Name)
	assert.Equal(t, "Gizmo", list[2].Name)
}
