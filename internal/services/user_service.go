package services

import (
	"context"
	"time"

	"brew_co/internal/derive"
	"brew_co/internal/fixtures"
	"brew_co/internal/models"
	"brew_co/internal/repository"
)

type UserService interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetLoyaltyLeaders(ctx context.Context, limit int) ([]models.LoyaltyLeader, error)
	GetRewards(ctx context.Context) ([]models.Reward, error)
}

type userService struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo, now: time.Now}
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) GetLoyaltyLeaders(ctx context.Context, limit int) ([]models.LoyaltyLeader, error) {
	if limit <= 0 {
		return nil, invalid("limit", "must be positive")
	}
	users, err := s.userRepo.GetTopByLoyalty(ctx, limit)
	if err != nil {
		return nil, err
	}
	return derive.LoyaltyLeaders(users, limit, s.now()), nil
}

// GetRewards returns the static reward catalogue. Rewards have no table.
func (s *userService) GetRewards(ctx context.Context) ([]models.Reward, error) {
	return fixtures.Rewards(), nil
}
