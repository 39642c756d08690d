package repository

import (
	"context"
	"time"

	"brew_co/internal/models"

	"gorm.io/gorm"
)

type StaffRepository interface {
	Repository[models.Staff]
	GetByStore(ctx context.Context, storeID string) ([]models.Staff, error)
}

type staffRepository struct {
	*Resource[models.Staff]
}

func NewStaffRepository(db *gorm.DB, seed []models.Staff) StaffRepository {
	return &staffRepository{Resource: NewResource("staff", db, Accessor[models.Staff]{
		ID:        func(s *models.Staff) *string { return &s.ID },
		CreatedAt: func(s *models.Staff) *time.Time { return &s.CreatedAt },
	}, seed)}
}

// GetByStore lists staff by name; an empty storeID lists every store.
func (r *staffRepository) GetByStore(ctx context.Context, storeID string) ([]models.Staff, error) {
	q := Query[models.Staff]{
		OrderBy: "name",
		Less:    func(a, b models.Staff) bool { return a.Name < b.Name },
	}
	if storeID != "" {
		q.Filters = map[string]interface{}{"store_id": storeID}
		q.Match = func(s models.Staff) bool { return s.StoreID == storeID }
	}
	return r.List(ctx, q)
}

type InventoryRepository interface {
	Repository[models.InventoryItem]
	GetByStore(ctx context.Context, storeID string) ([]models.InventoryItem, error)
}

type inventoryRepository struct {
	*Resource[models.InventoryItem]
}

func NewInventoryRepository(db *gorm.DB, seed []models.InventoryItem) InventoryRepository {
	return &inventoryRepository{Resource: NewResource("inventory", db, Accessor[models.InventoryItem]{
		ID:        func(i *models.InventoryItem) *string { return &i.ID },
		CreatedAt: func(i *models.InventoryItem) *time.Time { return &i.CreatedAt },
	}, seed)}
}

// GetByStore lists stock lowest percentage first; an empty storeID lists
// every store.
func (r *inventoryRepository) GetByStore(ctx context.Context, storeID string) ([]models.InventoryItem, error) {
	q := Query[models.InventoryItem]{
		OrderBy: "percentage",
		Less:    func(a, b models.InventoryItem) bool { return a.Percentage < b.Percentage },
	}
	if storeID != "" {
		q.Filters = map[string]interface{}{"store_id": storeID}
		q.Match = func(i models.InventoryItem) bool { return i.StoreID == storeID }
	}
	return r.List(ctx, q)
}
