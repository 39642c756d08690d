package models

import "time"

type BusyLevel string

const (
	BusyLow    BusyLevel = "Low"
	BusyMedium BusyLevel = "Medium"
	BusyHigh   BusyLevel = "High"
)

// Store is a physical shop location shown in the store locator.
type Store struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	Address        string    `json:"address"`
	Distance       string    `json:"distance"`
	Rating         float64   `json:"rating"`
	IsOpen         bool      `json:"is_open"`
	ClosingTime    string    `json:"closing_time"`
	BusyLevel      BusyLevel `json:"busy_level" gorm:"default:'Low'"`
	ImageURL       string    `json:"image"`
	HasDriveThru   bool      `json:"has_drive_thru"`
	HasMobileOrder bool      `json:"has_mobile_order"`
	CreatedAt      time.Time `json:"created_at"`
}
