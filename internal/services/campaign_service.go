package services

import (
	"context"
	"fmt"
	"strings"

	"brew_co/internal/models"
	"brew_co/internal/repository"

	"github.com/shopspring/decimal"
)

type CampaignService interface {
	GetCampaigns(ctx context.Context) ([]models.Campaign, error)
	SaveCampaign(ctx context.Context, campaign *models.Campaign) (*models.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
}

type campaignService struct {
	campaignRepo repository.CampaignRepository
}

func NewCampaignService(campaignRepo repository.CampaignRepository) CampaignService {
	return &campaignService{campaignRepo: campaignRepo}
}

func (s *campaignService) GetCampaigns(ctx context.Context) ([]models.Campaign, error) {
	return s.campaignRepo.GetRecent(ctx)
}

// SaveCampaign creates the campaign when it has no id and replaces the
// stored one otherwise.
func (s *campaignService) SaveCampaign(ctx context.Context, campaign *models.Campaign) (*models.Campaign, error) {
	campaign.Name = strings.TrimSpace(campaign.Name)
	if campaign.Status == "" {
		campaign.Status = models.CampaignDraft
	}
	if err := validateCampaign(campaign); err != nil {
		return nil, err
	}

	if campaign.ID == "" {
		if err := s.campaignRepo.Create(ctx, campaign); err != nil {
			return nil, fmt.Errorf("failed to create campaign: %w", err)
		}
		return campaign, nil
	}

	saved, err := s.campaignRepo.Update(ctx, campaign.ID, func(c *models.Campaign) error {
		createdAt := c.CreatedAt
		*c = *campaign
		c.CreatedAt = createdAt
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return saved, nil
}

func (s *campaignService) DeleteCampaign(ctx context.Context, id string) error {
	if err := s.campaignRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}

var hundred = decimal.NewFromInt(100)

func validateCampaign(c *models.Campaign) error {
	if c.Name == "" {
		return invalid("name", "is required")
	}
	switch c.OfferType {
	case models.OfferPercent:
		if c.DiscountValue.GreaterThan(hundred) {
			return invalid("discount_value", "percent discount cannot exceed 100")
		}
	case models.OfferFixed, models.OfferBOGO:
	default:
		return invalid("offer_type", "must be percent, fixed or bogo")
	}
	if c.DiscountValue.IsNegative() {
		return invalid("discount_value", "must not be negative")
	}
	if c.MinPurchase.IsNegative() {
		return invalid("min_purchase", "must not be negative")
	}
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && c.EndDate.Before(c.StartDate) {
		return invalid("end_date", "must not be before start_date")
	}
	switch c.Status {
	case models.CampaignDraft, models.CampaignActive, models.CampaignEnded:
	default:
		return invalid("status", "must be Draft, Active or Ended")
	}
	return nil
}
