package services

import (
	"context"
	"fmt"

	"brew_co/internal/derive"
	"brew_co/internal/models"
	"brew_co/internal/repository"
)

type StaffService interface {
	GetStaff(ctx context.Context, storeID string) ([]models.Staff, error)
	GetStaffPerformance(ctx context.Context, storeID string) ([]models.StaffPerformance, error)
}

type staffService struct {
	staffRepo repository.StaffRepository
}

func NewStaffService(staffRepo repository.StaffRepository) StaffService {
	return &staffService{staffRepo: staffRepo}
}

func (s *staffService) GetStaff(ctx context.Context, storeID string) ([]models.Staff, error) {
	return s.staffRepo.GetByStore(ctx, storeID)
}

// GetStaffPerformance returns placeholder figures ranked by the staff
// ordering; see derive.StaffPerformance.
func (s *staffService) GetStaffPerformance(ctx context.Context, storeID string) ([]models.StaffPerformance, error) {
	staff, err := s.staffRepo.GetByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}
	return derive.StaffPerformance(staff), nil
}

type InventoryService interface {
	GetInventory(ctx context.Context, storeID string) ([]models.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, id string, update models.InventoryUpdate) (*models.InventoryItem, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
}

func NewInventoryService(inventoryRepo repository.InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

func (s *inventoryService) GetInventory(ctx context.Context, storeID string) ([]models.InventoryItem, error) {
	return s.inventoryRepo.GetByStore(ctx, storeID)
}

// UpdateInventoryItem applies the given fields only. Percentage and status
// are independent and not reconciled.
func (s *inventoryService) UpdateInventoryItem(ctx context.Context, id string, update models.InventoryUpdate) (*models.InventoryItem, error) {
	if update.Percentage != nil && (*update.Percentage < 0 || *update.Percentage > 100) {
		return nil, invalid("percentage", "must be between 0 and 100")
	}
	if update.Status != nil {
		switch *update.Status {
		case models.InventoryHealthy, models.InventoryLow, models.InventoryCritical:
		default:
			return nil, invalid("status", "must be Healthy, Low or Critical")
		}
	}
	item, err := s.inventoryRepo.Update(ctx, id, func(i *models.InventoryItem) error {
		update.Apply(i)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return item, nil
}

type StoreService interface {
	GetStores(ctx context.Context) ([]models.Store, error)
	GetStoreByID(ctx context.Context, id string) (*models.Store, error)
}

type storeService struct {
	storeRepo repository.StoreRepository
}

func NewStoreService(storeRepo repository.StoreRepository) StoreService {
	return &storeService{storeRepo: storeRepo}
}

func (s *storeService) GetStores(ctx context.Context) ([]models.Store, error) {
	return s.storeRepo.GetAll(ctx)
}

func (s *storeService) GetStoreByID(ctx context.Context, id string) (*models.Store, error) {
	return s.storeRepo.GetByID(ctx, id)
}
