package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OfferType string

const (
	OfferPercent OfferType = "percent"
	OfferFixed   OfferType = "fixed"
	OfferBOGO    OfferType = "bogo"
)

type CampaignStatus string

const (
	CampaignDraft  CampaignStatus = "Draft"
	CampaignActive CampaignStatus = "Active"
	CampaignEnded  CampaignStatus = "Ended"
)

type Campaign struct {
	ID             string          `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"not null"`
	OfferType      OfferType       `json:"offer_type"`
	DiscountValue  decimal.Decimal `json:"discount_value" gorm:"type:numeric(10,2)"`
	MinPurchase    decimal.Decimal `json:"min_purchase" gorm:"type:numeric(10,2)"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	TargetAudience string          `json:"target_audience"`
	Status         CampaignStatus  `json:"status" gorm:"default:'Draft'"`
	CreatedAt      time.Time       `json:"created_at"`
}
