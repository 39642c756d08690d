package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Order struct {
	ID           string          `json:"id" gorm:"primaryKey"`
	OrderNumber  int             `json:"order_number" gorm:"index;not null"`
	UserID       string          `json:"user_id" gorm:"index"`
	StoreID      string          `json:"store_id" gorm:"index"`
	CustomerName string          `json:"customer_name" gorm:"not null"`
	Status       OrderStatus     `json:"status" gorm:"index;default:'Pending'"`
	Total        decimal.Decimal `json:"total" gorm:"type:numeric(10,2);not null"`
	CreatedAt    time.Time       `json:"created_at" gorm:"index"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusCompleted OrderStatus = "Completed"
	StatusCanceled  OrderStatus = "Canceled"
)

// OrderItem is one line of an order. Name, image and price are snapshots
// taken at checkout time.
type OrderItem struct {
	ID             string                     `json:"id" gorm:"primaryKey"`
	OrderID        string                     `json:"order_id" gorm:"index;not null"`
	ProductID      string                     `json:"product_id"`
	ProductName    string                     `json:"product_name" gorm:"not null"`
	ImageURL       string                     `json:"image"`
	UnitPrice      decimal.Decimal            `json:"unit_price" gorm:"type:numeric(10,2)"`
	Quantity       int                        `json:"quantity" gorm:"not null"`
	Size           Size                       `json:"size" gorm:"default:'M'"`
	Customizations datatypes.JSONSlice[string] `json:"customizations"`
	CreatedAt      time.Time                  `json:"created_at"`
}
