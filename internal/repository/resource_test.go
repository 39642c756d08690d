package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"brew_co/internal/database"
	"brew_co/internal/fixtures"
	"brew_co/internal/migrations"
	"brew_co/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T, seed bool) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open(filepath.Join(t.TempDir(), "remote.db")), logger.Silent)
	require.NoError(t, err)
	if seed {
		require.NoError(t, migrations.RunMigrations(db))
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestResource_MockCreateAssignsIdentity(t *testing.T) {
	repo := NewProductRepository(nil, fixtures.Products(time.Now()))
	ctx := context.Background()

	p := &models.Product{Name: "Flat White", Price: decimal.RequireFromString("4.20")}
	require.NoError(t, repo.Create(ctx, p))

	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flat White", got.Name)

	err = repo.Create(ctx, &models.Product{ID: p.ID, Name: "dup"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestResource_MockNotFound(t *testing.T) {
	repo := NewProductRepository(nil, nil)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "x"), ErrNotFound)
	_, err = repo.Update(ctx, "x", func(*models.Product) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResource_MutateErrorIsReturnedUnwrapped(t *testing.T) {
	repo := NewProductRepository(nil, fixtures.Products(time.Now()))
	rejected := errors.New("rejected")

	_, err := repo.Update(context.Background(), "1", func(*models.Product) error { return rejected })

	assert.Equal(t, rejected, err)
}

func TestResource_RemoteReadsAndWrites(t *testing.T) {
	db := openTestDB(t, true)
	ctx := context.Background()
	repo := NewOrderRepository(db, nil)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 4)
	assert.Equal(t, "ord-305", active[0].ID)
	for _, o := range active {
		assert.NotEqual(t, models.StatusCompleted, o.Status)
	}

	order := &models.Order{OrderNumber: 400, CustomerName: "Robin", Status: models.StatusPending, Total: decimal.RequireFromString("7.25")}
	require.NoError(t, repo.Create(ctx, order))

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.True(t, decimal.RequireFromString("7.25").Equal(stored.Total))
	assert.Equal(t, "Robin", stored.CustomerName)

	updated, err := repo.Update(ctx, order.ID, func(o *models.Order) error {
		o.Status = models.StatusPreparing
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, updated.Status)

	require.NoError(t, repo.Delete(ctx, order.ID))
	assert.ErrorIs(t, db.First(&stored, "id = ?", order.ID).Error, gorm.ErrRecordNotFound)
}

func TestResource_RemoteJSONAndDecimalColumns(t *testing.T) {
	db := openTestDB(t, true)
	repo := NewOrderItemRepository(db, nil)

	items, err := repo.GetByOrderID(context.Background(), "ord-305")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"Oat Milk", "Vanilla Syrup"}, []string(items[0].Customizations))
	assert.True(t, decimal.RequireFromString("4.80").Equal(items[0].UnitPrice))
}

func TestResource_RemoteMissFallsBackToMock(t *testing.T) {
	db := openTestDB(t, false)
	ctx := context.Background()
	orders, _ := fixtures.Orders(time.Now())
	repo := NewOrderRepository(db, orders)

	// the remote table is empty, which is a successful answer
	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	// a missing row is a remote failure and is served from the mirror
	got, err := repo.GetByID(ctx, "ord-305")
	require.NoError(t, err)
	assert.Equal(t, "Sarah J.", got.CustomerName)

	updated, err := repo.Update(ctx, "ord-305", func(o *models.Order) error {
		o.Status = models.StatusPreparing
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, updated.Status)
}

func TestResource_UnreachableRemoteFallsBack(t *testing.T) {
	db := openTestDB(t, true)
	ctx := context.Background()
	orders, _ := fixtures.Orders(time.Now())
	repo := NewOrderRepository(db, orders)
	closeDB(t, db)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 4)

	order := &models.Order{CustomerName: "Offline", Status: models.StatusPending}
	require.NoError(t, repo.Create(ctx, order))
	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Offline", got.CustomerName)

	assert.ErrorIs(t, repo.Delete(ctx, "never-existed"), ErrNotFound)
}

func TestResource_RemoteMutateErrorDoesNotFallBack(t *testing.T) {
	db := openTestDB(t, true)
	ctx := context.Background()
	orders, _ := fixtures.Orders(time.Now())
	repo := NewOrderRepository(db, orders)
	rejected := errors.New("rejected")

	_, err := repo.Update(ctx, "ord-306", func(o *models.Order) error {
		o.Status = models.StatusCanceled
		return rejected
	})
	assert.Equal(t, rejected, err)

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", "ord-306").Error)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestRepositories_MockMode(t *testing.T) {
	repos := New(nil)
	ctx := context.Background()
	assert.False(t, repos.RemoteConfigured())

	products, err := repos.Products.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)

	staff, err := repos.Staff.GetByStore(ctx, fixtures.DefaultStoreID)
	require.NoError(t, err)
	assert.Equal(t, "Elena Rodriguez", staff[0].Name)

	inventory, err := repos.Inventory.GetByStore(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 15, inventory[0].Percentage)

	top, err := repos.Users.GetTopByLoyalty(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 4500, top[0].LoyaltyPoints)

	stores, err := repos.Stores.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0.2 mi", stores[0].Distance)
}

func TestRepositories_RemoteMode(t *testing.T) {
	db := openTestDB(t, true)
	repos := New(db)
	ctx := context.Background()
	assert.True(t, repos.RemoteConfigured())

	products, err := repos.Products.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, products, 6)
	assert.True(t, products[0].IsPopular)

	reviews, err := repos.Reviews.GetRecent(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "1", reviews[0].ID)

	history, err := repos.Notifications.GetHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
