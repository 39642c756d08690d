package repository

import (
	"context"
	"time"

	"brew_co/internal/models"

	"gorm.io/gorm"
)

// ActiveStatuses are the order statuses that still belong in the queue.
var ActiveStatuses = []models.OrderStatus{models.StatusPending, models.StatusPreparing, models.StatusReady}

type OrderRepository interface {
	Repository[models.Order]
	ListRecent(ctx context.Context) ([]models.Order, error)
	ListActive(ctx context.Context) ([]models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}

type orderRepository struct {
	*Resource[models.Order]
}

func NewOrderRepository(db *gorm.DB, seed []models.Order) OrderRepository {
	return &orderRepository{Resource: NewResource("orders", db, Accessor[models.Order]{
		ID:        func(o *models.Order) *string { return &o.ID },
		CreatedAt: func(o *models.Order) *time.Time { return &o.CreatedAt },
	}, seed)}
}

func orderOlder(a, b models.Order) bool {
	return a.CreatedAt.Before(b.CreatedAt)
}

func (r *orderRepository) ListRecent(ctx context.Context) ([]models.Order, error) {
	return r.List(ctx, Query[models.Order]{
		OrderBy:    "created_at",
		Descending: true,
		Less:       orderOlder,
	})
}

func (r *orderRepository) ListActive(ctx context.Context) ([]models.Order, error) {
	statuses := make([]string, len(ActiveStatuses))
	for i, s := range ActiveStatuses {
		statuses[i] = string(s)
	}
	return r.List(ctx, Query[models.Order]{
		Filters: map[string]interface{}{"status": statuses},
		OrderBy: "created_at",
		Match: func(o models.Order) bool {
			for _, s := range ActiveStatuses {
				if o.Status == s {
					return true
				}
			}
			return false
		},
		Less: orderOlder,
	})
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return r.List(ctx, Query[models.Order]{
		Filters:    map[string]interface{}{"user_id": userID},
		OrderBy:    "created_at",
		Descending: true,
		Match:      func(o models.Order) bool { return o.UserID == userID },
		Less:       orderOlder,
	})
}
