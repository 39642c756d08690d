package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"brew_co/internal/models"
	"brew_co/internal/repository"
)

type MenuService interface {
	GetMenuProducts(ctx context.Context) ([]models.Product, error)
	GetAvailableProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	CreateMenuItem(ctx context.Context, product *models.Product) error
	UpdateMenuItem(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error)
	DeleteMenuItem(ctx context.Context, id string) error
}

type menuService struct {
	productRepo repository.ProductRepository
}

func NewMenuService(productRepo repository.ProductRepository) MenuService {
	return &menuService{productRepo: productRepo}
}

func (s *menuService) GetMenuProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.GetAll(ctx)
}

func (s *menuService) GetAvailableProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.ListAvailable(ctx)
}

func (s *menuService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *menuService) CreateMenuItem(ctx context.Context, product *models.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	if err := validateProduct(product); err != nil {
		return err
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	log.Printf("Menu item %q created (%s)", product.Name, product.ID)
	return nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	product, err := s.productRepo.Update(ctx, id, func(p *models.Product) error {
		update.Apply(p)
		p.Name = strings.TrimSpace(p.Name)
		return validateProduct(p)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return product, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}

func validateProduct(p *models.Product) error {
	if p.Name == "" {
		return invalid("name", "is required")
	}
	if p.Price.IsNegative() {
		return invalid("price", "must not be negative")
	}
	return nil
}
