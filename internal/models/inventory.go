package models

import "time"

type InventoryStatus string

const (
	InventoryHealthy  InventoryStatus = "Healthy"
	InventoryLow      InventoryStatus = "Low"
	InventoryCritical InventoryStatus = "Critical"
)

type InventoryItem struct {
	ID         string          `json:"id" gorm:"primaryKey"`
	StoreID    string          `json:"store_id" gorm:"index"`
	Name       string          `json:"name" gorm:"not null"`
	Category   string          `json:"category"`
	Quantity   string          `json:"quantity"`
	Percentage int             `json:"percentage"`
	Status     InventoryStatus `json:"status" gorm:"default:'Healthy'"`
	ImageURL   string          `json:"image"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}

// InventoryUpdate sets stock fields independently; status and percentage
// are not reconciled with each other.
type InventoryUpdate struct {
	Quantity   *string          `json:"quantity"`
	Percentage *int             `json:"percentage"`
	Status     *InventoryStatus `json:"status"`
}

func (u InventoryUpdate) Apply(item *InventoryItem) {
	if u.Quantity != nil {
		item.Quantity = *u.Quantity
	}
	if u.Percentage != nil {
		item.Percentage = *u.Percentage
	}
	if u.Status != nil {
		item.Status = *u.Status
	}
}
