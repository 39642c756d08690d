package models

import "time"

type Review struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"index"`
	ProductID    string    `json:"product_id" gorm:"index"`
	CustomerName string    `json:"customer_name"`
	AvatarURL    string    `json:"avatar"`
	ProductName  string    `json:"product"`
	Rating       int       `json:"rating" gorm:"not null"`
	ReviewText   string    `json:"review_text"`
	IsReplied    bool      `json:"is_replied" gorm:"default:false"`
	ReplyText    string    `json:"reply_text,omitempty"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
	TimeAgo      string    `json:"time_ago" gorm:"-"`
}
