package models

import "time"

type NotificationAudience string

const (
	AudienceAll      NotificationAudience = "all"
	AudienceLoyal    NotificationAudience = "loyal"
	AudienceInactive NotificationAudience = "inactive"
	AudienceNew      NotificationAudience = "new"
)

type DeliveryMode string

const (
	DeliverNow       DeliveryMode = "now"
	DeliverScheduled DeliveryMode = "scheduled"
)

type NotificationStatus string

const (
	NotificationDraft     NotificationStatus = "Draft"
	NotificationScheduled NotificationStatus = "Scheduled"
	NotificationSent      NotificationStatus = "Sent"
)

type NotificationHistoryItem struct {
	ID           string               `json:"id" gorm:"primaryKey"`
	Title        string               `json:"title" gorm:"not null"`
	Message      string               `json:"message"`
	Audience     NotificationAudience `json:"audience"`
	Delivery     DeliveryMode         `json:"delivery"`
	Status       NotificationStatus   `json:"status"`
	TargetCount  int                  `json:"target_count"`
	ScheduledFor *time.Time           `json:"scheduled_for,omitempty"`
	CreatedAt    time.Time            `json:"created_at" gorm:"index"`
}

func (NotificationHistoryItem) TableName() string {
	return "notifications"
}
