package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"brew_co/internal/derive"
	"brew_co/internal/fixtures"
	"brew_co/internal/models"
	"brew_co/internal/repository"
	"brew_co/internal/statemachine"

	"gorm.io/datatypes"
)

// firstOrderNumber is the display number handed out when no order exists.
const firstOrderNumber = 301

type CheckoutDetails struct {
	CustomerName string
	UserID       string
	StoreID      string
}

type OrderService interface {
	CreateOrderFromCart(ctx context.Context, cart []models.CartItem, details CheckoutDetails) (*models.Order, error)
	TransitionQueueOrder(ctx context.Context, orderID string, action models.QueueAction) (*models.Order, error)
	GetOrderQueue(ctx context.Context) ([]models.OrderQueueItem, error)
	GetOrderHistory(ctx context.Context, userID string) ([]models.Order, error)
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	now           func() time.Time
}

func NewOrderService(orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository) OrderService {
	return &orderService{orderRepo: orderRepo, orderItemRepo: orderItemRepo, now: time.Now}
}

// CreateOrderFromCart writes one Pending order and a line item per cart
// line. The cart itself is not touched.
func (s *orderService) CreateOrderFromCart(ctx context.Context, cart []models.CartItem, details CheckoutDetails) (*models.Order, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}
	for i, line := range cart {
		if line.Quantity <= 0 {
			return nil, invalid(fmt.Sprintf("cart[%d].quantity", i), "must be at least 1")
		}
		if !line.Size.Valid() {
			return nil, invalid(fmt.Sprintf("cart[%d].size", i), "must be S, M or L")
		}
		if line.Product.Price.IsNegative() {
			return nil, invalid(fmt.Sprintf("cart[%d].price", i), "must not be negative")
		}
	}

	if details.CustomerName == "" {
		details.CustomerName = "Guest"
	}
	if details.StoreID == "" {
		details.StoreID = fixtures.DefaultStoreID
	}

	number, err := s.nextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNumber:  number,
		UserID:       details.UserID,
		StoreID:      details.StoreID,
		CustomerName: details.CustomerName,
		Status:       models.StatusPending,
		Total:        derive.CartTotal(cart),
		CreatedAt:    s.now(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, line := range cart {
		item := &models.OrderItem{
			OrderID:        order.ID,
			ProductID:      line.Product.ID,
			ProductName:    line.Product.Name,
			ImageURL:       line.Product.ImageURL,
			UnitPrice:      line.Product.Price,
			Quantity:       line.Quantity,
			Size:           line.Size,
			Customizations: datatypes.NewJSONSlice(append([]string{}, line.Customizations...)),
			CreatedAt:      order.CreatedAt,
		}
		if err := s.orderItemRepo.Create(ctx, item); err != nil {
			if delErr := s.orderRepo.Delete(ctx, order.ID); delErr != nil {
				log.Printf("Warning: failed to remove order %s after item error: %v", order.ID, delErr)
			}
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	log.Printf("Created order #%d (%s) for %s, total %s", order.OrderNumber, order.ID, order.CustomerName, order.Total.StringFixed(2))
	return order, nil
}

func (s *orderService) nextOrderNumber(ctx context.Context) (int, error) {
	orders, err := s.orderRepo.ListRecent(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load orders: %w", err)
	}
	next := firstOrderNumber
	for _, o := range orders {
		if o.OrderNumber >= next {
			next = o.OrderNumber + 1
		}
	}
	return next, nil
}

// TransitionQueueOrder applies a queue action to the stored order. The
// transition is validated against the status read inside the update.
func (s *orderService) TransitionQueueOrder(ctx context.Context, orderID string, action models.QueueAction) (*models.Order, error) {
	if orderID == "" {
		return nil, invalid("order_id", "is required")
	}
	if !statemachine.IsValidAction(action) {
		return nil, invalid("action", fmt.Sprintf("unknown queue action %q", action))
	}

	var from models.OrderStatus
	order, err := s.orderRepo.Update(ctx, orderID, func(o *models.Order) error {
		next, err := statemachine.Next(o.Status, action)
		if err != nil {
			return err
		}
		from = o.Status
		o.Status = next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to transition order %s: %w", orderID, err)
	}

	log.Printf("Order %s moved %s -> %s", orderID, from, order.Status)
	return order, nil
}

func (s *orderService) GetOrderQueue(ctx context.Context) ([]models.OrderQueueItem, error) {
	orders, err := s.orderRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active orders: %w", err)
	}
	items, err := s.orderItemRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	return derive.BuildQueue(orders, items, s.now()), nil
}

// GetOrderHistory lists orders newest first. An empty userID lists every
// order.
func (s *orderService) GetOrderHistory(ctx context.Context, userID string) ([]models.Order, error) {
	if userID == "" {
		return s.orderRepo.ListRecent(ctx)
	}
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	return s.orderItemRepo.GetByOrderID(ctx, orderID)
}
