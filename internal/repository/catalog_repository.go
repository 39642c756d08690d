package repository

import (
	"context"
	"time"

	"brew_co/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Repository[models.Product]
	ListAvailable(ctx context.Context) ([]models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
}

type productRepository struct {
	*Resource[models.Product]
}

func NewProductRepository(db *gorm.DB, seed []models.Product) ProductRepository {
	return &productRepository{Resource: NewResource("products", db, Accessor[models.Product]{
		ID:        func(p *models.Product) *string { return &p.ID },
		CreatedAt: func(p *models.Product) *time.Time { return &p.CreatedAt },
	}, seed)}
}

// ListAvailable returns the customer menu, popular items first.
func (r *productRepository) ListAvailable(ctx context.Context) ([]models.Product, error) {
	return r.List(ctx, Query[models.Product]{
		Filters:    map[string]interface{}{"is_available": true},
		OrderBy:    "is_popular",
		Descending: true,
		Match:      func(p models.Product) bool { return p.IsAvailable },
		Less:       func(a, b models.Product) bool { return !a.IsPopular && b.IsPopular },
	})
}

func (r *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.List(ctx, Query[models.Product]{OrderBy: "created_at", Descending: true, Less: func(a, b models.Product) bool {
		return a.CreatedAt.Before(b.CreatedAt)
	}})
}

type StoreRepository interface {
	Repository[models.Store]
	GetAll(ctx context.Context) ([]models.Store, error)
}

type storeRepository struct {
	*Resource[models.Store]
}

func NewStoreRepository(db *gorm.DB, seed []models.Store) StoreRepository {
	return &storeRepository{Resource: NewResource("stores", db, Accessor[models.Store]{
		ID:        func(s *models.Store) *string { return &s.ID },
		CreatedAt: func(s *models.Store) *time.Time { return &s.CreatedAt },
	}, seed)}
}

func (r *storeRepository) GetAll(ctx context.Context) ([]models.Store, error) {
	return r.List(ctx, Query[models.Store]{
		OrderBy: "distance",
		Less:    func(a, b models.Store) bool { return a.Distance < b.Distance },
	})
}
