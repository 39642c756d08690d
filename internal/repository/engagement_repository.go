package repository

import (
	"context"
	"time"

	"brew_co/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Repository[models.User]
	GetTopByLoyalty(ctx context.Context, limit int) ([]models.User, error)
}

type userRepository struct {
	*Resource[models.User]
}

func NewUserRepository(db *gorm.DB, seed []models.User) UserRepository {
	return &userRepository{Resource: NewResource("users", db, Accessor[models.User]{
		ID:        func(u *models.User) *string { return &u.ID },
		CreatedAt: func(u *models.User) *time.Time { return &u.CreatedAt },
	}, seed)}
}

func (r *userRepository) GetTopByLoyalty(ctx context.Context, limit int) ([]models.User, error) {
	users, err := r.List(ctx, Query[models.User]{
		OrderBy:    "loyalty_points",
		Descending: true,
		Less:       func(a, b models.User) bool { return a.LoyaltyPoints < b.LoyaltyPoints },
	})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

type ReviewRepository interface {
	Repository[models.Review]
	GetRecent(ctx context.Context) ([]models.Review, error)
}

type reviewRepository struct {
	*Resource[models.Review]
}

func NewReviewRepository(db *gorm.DB, seed []models.Review) ReviewRepository {
	return &reviewRepository{Resource: NewResource("reviews", db, Accessor[models.Review]{
		ID:        func(r *models.Review) *string { return &r.ID },
		CreatedAt: func(r *models.Review) *time.Time { return &r.CreatedAt },
	}, seed)}
}

func (r *reviewRepository) GetRecent(ctx context.Context) ([]models.Review, error) {
	return r.List(ctx, Query[models.Review]{
		OrderBy:    "created_at",
		Descending: true,
		Less:       func(a, b models.Review) bool { return a.CreatedAt.Before(b.CreatedAt) },
	})
}

type CampaignRepository interface {
	Repository[models.Campaign]
	GetRecent(ctx context.Context) ([]models.Campaign, error)
}

type campaignRepository struct {
	*Resource[models.Campaign]
}

func NewCampaignRepository(db *gorm.DB, seed []models.Campaign) CampaignRepository {
	return &campaignRepository{Resource: NewResource("campaigns", db, Accessor[models.Campaign]{
		ID:        func(c *models.Campaign) *string { return &c.ID },
		CreatedAt: func(c *models.Campaign) *time.Time { return &c.CreatedAt },
	}, seed)}
}

func (r *campaignRepository) GetRecent(ctx context.Context) ([]models.Campaign, error) {
	return r.List(ctx, Query[models.Campaign]{
		OrderBy:    "created_at",
		Descending: true,
		Less:       func(a, b models.Campaign) bool { return a.CreatedAt.Before(b.CreatedAt) },
	})
}

type NotificationRepository interface {
	Repository[models.NotificationHistoryItem]
	GetHistory(ctx context.Context) ([]models.NotificationHistoryItem, error)
}

type notificationRepository struct {
	*Resource[models.NotificationHistoryItem]
}

func NewNotificationRepository(db *gorm.DB, seed []models.NotificationHistoryItem) NotificationRepository {
	return &notificationRepository{Resource: NewResource("notifications", db, Accessor[models.NotificationHistoryItem]{
		ID:        func(n *models.NotificationHistoryItem) *string { return &n.ID },
		CreatedAt: func(n *models.NotificationHistoryItem) *time.Time { return &n.CreatedAt },
	}, seed)}
}

func (r *notificationRepository) GetHistory(ctx context.Context) ([]models.NotificationHistoryItem, error) {
	return r.List(ctx, Query[models.NotificationHistoryItem]{
		OrderBy:    "created_at",
		Descending: true,
		Less: func(a, b models.NotificationHistoryItem) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		},
	})
}
