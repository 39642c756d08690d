package repository

import (
	"context"
	"time"

	"brew_co/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	Repository[models.OrderItem]
	GetByOrderID(ctx context.Context, orderID string) ([]models.OrderItem, error)
	GetAll(ctx context.Context) ([]models.OrderItem, error)
}

type orderItemRepository struct {
	*Resource[models.OrderItem]
}

func NewOrderItemRepository(db *gorm.DB, seed []models.OrderItem) OrderItemRepository {
	return &orderItemRepository{Resource: NewResource("order_items", db, Accessor[models.OrderItem]{
		ID:        func(i *models.OrderItem) *string { return &i.ID },
		CreatedAt: func(i *models.OrderItem) *time.Time { return &i.CreatedAt },
	}, seed)}
}

func (r *orderItemRepository) GetByOrderID(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	return r.List(ctx, Query[models.OrderItem]{
		Filters: map[string]interface{}{"order_id": orderID},
		OrderBy: "id",
		Match:   func(i models.OrderItem) bool { return i.OrderID == orderID },
	})
}

func (r *orderItemRepository) GetAll(ctx context.Context) ([]models.OrderItem, error) {
	return r.List(ctx, Query[models.OrderItem]{OrderBy: "created_at", Less: func(a, b models.OrderItem) bool {
		return a.CreatedAt.Before(b.CreatedAt)
	}})
}
