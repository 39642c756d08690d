package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brew_co/internal/derive"
	"brew_co/internal/models"
	"brew_co/internal/repository"
)

type FeedbackService interface {
	GetFeedbackReviews(ctx context.Context) ([]models.Review, error)
	ReplyToFeedback(ctx context.Context, reviewID, replyText string) (*models.Review, error)
}

type feedbackService struct {
	reviewRepo repository.ReviewRepository
	now        func() time.Time
}

func NewFeedbackService(reviewRepo repository.ReviewRepository) FeedbackService {
	return &feedbackService{reviewRepo: reviewRepo, now: time.Now}
}

func (s *feedbackService) GetFeedbackReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.reviewRepo.GetRecent(ctx)
	if err != nil {
		return nil, err
	}
	return derive.WithTimeAgo(reviews, s.now()), nil
}

func (s *feedbackService) ReplyToFeedback(ctx context.Context, reviewID, replyText string) (*models.Review, error) {
	replyText = strings.TrimSpace(replyText)
	if replyText == "" {
		return nil, invalid("reply_text", "is required")
	}
	review, err := s.reviewRepo.Update(ctx, reviewID, func(r *models.Review) error {
		r.IsReplied = true
		r.ReplyText = replyText
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reply to review: %w", err)
	}
	review.TimeAgo = derive.TimeAgo(review.CreatedAt, s.now())
	return review, nil
}
