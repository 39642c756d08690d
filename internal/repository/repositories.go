package repository

import (
	"log"
	"time"

	"brew_co/internal/fixtures"

	"gorm.io/gorm"
)

// Repositories bundles the per-entity adapters. Every adapter shares the
// same remote handle and owns its own mock mirror.
type Repositories struct {
	Products      ProductRepository
	Stores        StoreRepository
	Orders        OrderRepository
	OrderItems    OrderItemRepository
	Users         UserRepository
	Staff         StaffRepository
	Inventory     InventoryRepository
	Reviews       ReviewRepository
	Campaigns     CampaignRepository
	Notifications NotificationRepository
	remote        bool
}

// New seeds the mock mirrors from the fixtures and wires the remote
// backend when db is not nil.
func New(db *gorm.DB) *Repositories {
	if db == nil {
		log.Printf("Warning: %v, serving mock data", ErrRemoteUnavailable)
	}

	seededAt := time.Now()
	orders, items := fixtures.Orders(seededAt)
	return &Repositories{
		Products:      NewProductRepository(db, fixtures.Products(seededAt)),
		Stores:        NewStoreRepository(db, fixtures.Stores(seededAt)),
		Orders:        NewOrderRepository(db, orders),
		OrderItems:    NewOrderItemRepository(db, items),
		Users:         NewUserRepository(db, fixtures.Users(seededAt)),
		Staff:         NewStaffRepository(db, fixtures.Staff(seededAt)),
		Inventory:     NewInventoryRepository(db, fixtures.Inventory(seededAt)),
		Reviews:       NewReviewRepository(db, fixtures.Reviews(seededAt)),
		Campaigns:     NewCampaignRepository(db, fixtures.Campaigns(seededAt)),
		Notifications: NewNotificationRepository(db, fixtures.Notifications(seededAt)),
		remote:        db != nil,
	}
}

// RemoteConfigured reports whether a remote backend was supplied.
func (r *Repositories) RemoteConfigured() bool {
	return r.remote
}
