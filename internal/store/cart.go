package store

import (
	"context"
	"fmt"

	"brew_co/internal/derive"
	"brew_co/internal/models"
	"brew_co/internal/services"

	"github.com/shopspring/decimal"
)

// AddToCart adds quantity units of product, merging into an existing line
// with the same product, size and customizations. A non-positive quantity
// is ignored and an empty size means medium.
func (s *Store) AddToCart(ctx context.Context, product models.Product, quantity int, size models.Size, customizations []string) error {
	if quantity <= 0 {
		return nil
	}
	if size == "" {
		size = models.SizeMedium
	}
	if !size.Valid() {
		err := &services.ValidationError{Field: "size", Message: fmt.Sprintf("unknown size %q", size)}
		s.commit(func(st *State) { st.Error = err.Error() })
		return err
	}

	line := models.CartItem{
		Product:        product,
		Quantity:       quantity,
		Size:           size,
		Customizations: append([]string{}, customizations...),
	}
	key := derive.LineKey(line)

	s.commit(func(st *State) {
		for i := range st.Cart {
			if derive.LineKey(st.Cart[i]) == key {
				st.Cart[i].Quantity += quantity
				return
			}
		}
		st.Cart = append(st.Cart, line)
	})
	s.persist(ctx)
	return nil
}

// RemoveFromCart drops the line at index. Out of range indexes are ignored.
func (s *Store) RemoveFromCart(ctx context.Context, index int) {
	changed := false
	s.commit(func(st *State) {
		if index < 0 || index >= len(st.Cart) {
			return
		}
		st.Cart = append(st.Cart[:index:index], st.Cart[index+1:]...)
		changed = true
	})
	if changed {
		s.persist(ctx)
	}
}

// UpdateQuantity changes the quantity of the line at index by delta. A
// line that reaches zero is removed.
func (s *Store) UpdateQuantity(ctx context.Context, index, delta int) {
	changed := false
	s.commit(func(st *State) {
		if index < 0 || index >= len(st.Cart) {
			return
		}
		changed = true
		next := st.Cart[index].Quantity + delta
		if next <= 0 {
			st.Cart = append(st.Cart[:index:index], st.Cart[index+1:]...)
			return
		}
		st.Cart[index].Quantity = next
	})
	if changed {
		s.persist(ctx)
	}
}

func (s *Store) ClearCart(ctx context.Context) {
	s.commit(func(st *State) { st.Cart = []models.CartItem{} })
	s.persist(ctx)
}

func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCart(s.state.Cart)
}

// CartTotal is computed from the current lines on every call.
func (s *Store) CartTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return derive.CartTotal(s.state.Cart)
}

// SubmitCartOrder checks out the current cart and returns the new order id.
// On failure the cart is left as it was.
func (s *Store) SubmitCartOrder(ctx context.Context, customerName string) (string, error) {
	var orderID string
	err := s.run("submitCartOrder", func() error {
		cart := s.Cart()
		if len(cart) == 0 {
			return services.ErrEmptyCart
		}

		order, err := s.svc.Orders.CreateOrderFromCart(ctx, cart, services.CheckoutDetails{CustomerName: customerName})
		if err != nil {
			return err
		}
		orderID = order.ID

		s.commit(func(st *State) { st.Cart = []models.CartItem{} })
		s.persist(ctx)

		return s.refreshQueueAndAnalytics(ctx)
	})
	return orderID, err
}
