package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	ImageURL    string          `json:"image"`
	Category    string          `json:"category" gorm:"index"`
	IsAvailable bool            `json:"is_available"`
	IsPopular   bool            `json:"is_popular" gorm:"default:false"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductUpdate carries the fields an admin may change on a menu item.
// Nil fields are left untouched.
type ProductUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image"`
	Category    *string          `json:"category"`
	IsAvailable *bool            `json:"is_available"`
	IsPopular   *bool            `json:"is_popular"`
}

func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.IsAvailable != nil {
		p.IsAvailable = *u.IsAvailable
	}
	if u.IsPopular != nil {
		p.IsPopular = *u.IsPopular
	}
}

// Reward is part of the static loyalty catalogue and has no backing table.
type Reward struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PointsCost  int    `json:"points_cost"`
	ImageURL    string `json:"image"`
	Description string `json:"description"`
}
