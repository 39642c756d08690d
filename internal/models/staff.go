package models

import "time"

type StaffStatus string

const (
	StaffActive   StaffStatus = "Active"
	StaffInactive StaffStatus = "Inactive"
	StaffOnShift  StaffStatus = "On Shift"
)

type Staff struct {
	ID        string      `json:"id" gorm:"primaryKey"`
	StoreID   string      `json:"store_id" gorm:"index"`
	Name      string      `json:"name" gorm:"not null"`
	Role      string      `json:"role"`
	Status    StaffStatus `json:"status" gorm:"default:'Active'"`
	ImageURL  string      `json:"image"`
	Shift     string      `json:"shift"`
	CreatedAt time.Time   `json:"created_at"`
}

func (Staff) TableName() string {
	return "staff"
}

type StaffPerformance struct {
	Staff
	OrdersCompleted int     `json:"orders_completed"`
	Rating          float64 `json:"rating"`
	AvgPrepTime     string  `json:"avg_prep_time"`
	SalesGenerated  float64 `json:"sales_generated"`
}
