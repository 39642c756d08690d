package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"brew_co/internal/derive"
	"brew_co/internal/models"
	"brew_co/internal/repository"
)

type NotificationInput struct {
	Title        string                      `json:"title"`
	Message      string                      `json:"message"`
	Audience     models.NotificationAudience `json:"audience"`
	Delivery     models.DeliveryMode         `json:"delivery"`
	ScheduledFor *time.Time                  `json:"scheduled_for"`
}

type NotificationService interface {
	GetNotificationHistory(ctx context.Context) ([]models.NotificationHistoryItem, error)
	SendNotification(ctx context.Context, input NotificationInput) (*models.NotificationHistoryItem, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	now              func() time.Time
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo, now: time.Now}
}

func (s *notificationService) GetNotificationHistory(ctx context.Context) ([]models.NotificationHistoryItem, error) {
	return s.notificationRepo.GetHistory(ctx)
}

// SendNotification records the notification with its estimated reach.
// Scheduled notifications are stored as Scheduled; nothing delivers them
// later and the scheduled time is not compared with the current time.
func (s *notificationService) SendNotification(ctx context.Context, input NotificationInput) (*models.NotificationHistoryItem, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, invalid("title", "is required")
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, invalid("message", "is required")
	}
	reach, ok := derive.AudienceReach(input.Audience)
	if !ok {
		return nil, invalid("audience", "must be all, loyal, inactive or new")
	}

	item := &models.NotificationHistoryItem{
		Title:       input.Title,
		Message:     input.Message,
		Audience:    input.Audience,
		Delivery:    input.Delivery,
		TargetCount: reach,
		CreatedAt:   s.now(),
	}
	switch input.Delivery {
	case models.DeliverNow:
		item.Status = models.NotificationSent
	case models.DeliverScheduled:
		if input.ScheduledFor == nil || input.ScheduledFor.IsZero() {
			return nil, invalid("scheduled_for", "is required for scheduled delivery")
		}
		at := *input.ScheduledFor
		item.ScheduledFor = &at
		item.Status = models.NotificationScheduled
	default:
		return nil, invalid("delivery", "must be now or scheduled")
	}

	if err := s.notificationRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to record notification: %w", err)
	}
	log.Printf("Notification %q %s for %s audience (~%d recipients)", item.Title, strings.ToLower(string(item.Status)), item.Audience, item.TargetCount)
	return item, nil
}
