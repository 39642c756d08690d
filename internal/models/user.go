package models

import "time"

type User struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	Email         string     `json:"email" gorm:"unique;not null"`
	FullName      string     `json:"full_name" gorm:"not null"`
	AvatarURL     string     `json:"avatar"`
	LoyaltyPoints int        `json:"loyalty_points" gorm:"default:0"`
	LastVisitAt   *time.Time `json:"last_visit_at"`
	CreatedAt     time.Time  `json:"created_at"`
}
