package services

import (
	"context"
	"fmt"
	"time"

	"brew_co/internal/derive"
	"brew_co/internal/models"
	"brew_co/internal/repository"
)

type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (*models.AnalyticsData, error)
}

type analyticsService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	userRepo      repository.UserRepository
	now           func() time.Time
}

func NewAnalyticsService(orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository, userRepo repository.UserRepository) AnalyticsService {
	return &analyticsService{orderRepo: orderRepo, orderItemRepo: orderItemRepo, userRepo: userRepo, now: time.Now}
}

// GetAnalytics recomputes the dashboard from the current order set on
// every call; nothing is cached here.
func (s *analyticsService) GetAnalytics(ctx context.Context) (*models.AnalyticsData, error) {
	orders, err := s.orderRepo.ListRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	items, err := s.orderItemRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	users, err := s.userRepo.List(ctx, repository.Query[models.User]{})
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	data := derive.ComputeAnalytics(orders, items, users, s.now())
	return &data, nil
}
