// Package store holds the application state shared by every screen: the
// cart, the customer/admin mode flag and the admin view caches. All
// mutation goes through Store methods.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"brew_co/internal/models"
	"brew_co/internal/services"
)

// StatePersister saves and restores the cart and mode flag between runs.
type StatePersister interface {
	SaveState(ctx context.Context, state models.PersistedState) error
	LoadState(ctx context.Context) (*models.PersistedState, error)
}

// State is a point-in-time copy of everything the store holds.
type State struct {
	Cart                []models.CartItem                `json:"cart"`
	IsAdminMode         bool                             `json:"is_admin_mode"`
	Loading             bool                             `json:"loading"`
	Error               string                           `json:"error,omitempty"`
	OrderQueue          []models.OrderQueueItem          `json:"order_queue"`
	Analytics           *models.AnalyticsData            `json:"analytics"`
	Feedback            []models.Review                  `json:"feedback"`
	Campaigns           []models.Campaign                `json:"campaigns"`
	StaffPerformance    []models.StaffPerformance        `json:"staff_performance"`
	NotificationHistory []models.NotificationHistoryItem `json:"notification_history"`
	MenuItems           []models.Product                 `json:"menu_items"`
	Inventory           []models.InventoryItem           `json:"inventory"`
	Stores              []models.Store                   `json:"stores"`
	OrderHistory        []models.Order                   `json:"order_history"`
}

type Store struct {
	mu       sync.RWMutex
	state    State
	inFlight int

	// persistMu orders writes to the persister so the last save carries
	// the latest cart.
	persistMu sync.Mutex
	persister StatePersister

	svc *services.Services
}

// New builds a store over the given services. persister may be nil, in
// which case the cart and mode only live in memory.
func New(svc *services.Services, persister StatePersister) *Store {
	return &Store{
		svc:       svc,
		persister: persister,
		state: State{
			Cart: []models.CartItem{},
		},
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	st.Loading = s.inFlight > 0
	st.Cart = cloneCart(s.state.Cart)
	st.OrderQueue = cloneQueue(s.state.OrderQueue)
	if s.state.Analytics != nil {
		a := cloneAnalytics(*s.state.Analytics)
		st.Analytics = &a
	}
	st.Feedback = append([]models.Review(nil), s.state.Feedback...)
	st.Campaigns = append([]models.Campaign(nil), s.state.Campaigns...)
	st.StaffPerformance = append([]models.StaffPerformance(nil), s.state.StaffPerformance...)
	st.NotificationHistory = cloneNotifications(s.state.NotificationHistory)
	st.MenuItems = append([]models.Product(nil), s.state.MenuItems...)
	st.Inventory = append([]models.InventoryItem(nil), s.state.Inventory...)
	st.Stores = append([]models.Store(nil), s.state.Stores...)
	st.OrderHistory = append([]models.Order(nil), s.state.OrderHistory...)
	return st
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight > 0
}

func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Error
}

// Restore loads the persisted cart and mode. A missing or unreadable
// record leaves the defaults in place.
func (s *Store) Restore(ctx context.Context) {
	if s.persister == nil {
		return
	}
	saved, err := s.persister.LoadState(ctx)
	if err != nil {
		log.Printf("Warning: could not restore saved state: %v", err)
		return
	}

	cart := make([]models.CartItem, 0, len(saved.Cart))
	for _, line := range saved.Cart {
		if line.Quantity <= 0 || !line.Size.Valid() {
			continue
		}
		cart = append(cart, line)
	}

	s.mu.Lock()
	s.state.Cart = cart
	s.state.IsAdminMode = saved.IsAdminMode
	s.mu.Unlock()
	log.Printf("Restored %d cart line(s), admin mode %v", len(cart), saved.IsAdminMode)
}

func (s *Store) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.RLock()
	saved := models.PersistedState{Cart: cloneCart(s.state.Cart), IsAdminMode: s.state.IsAdminMode}
	s.mu.RUnlock()

	if err := s.persister.SaveState(ctx, saved); err != nil {
		log.Printf("Warning: failed to persist state: %v", err)
	}
}

func (s *Store) ToggleAdminMode(ctx context.Context) bool {
	s.mu.Lock()
	s.state.IsAdminMode = !s.state.IsAdminMode
	mode := s.state.IsAdminMode
	s.mu.Unlock()
	s.persist(ctx)
	return mode
}

func (s *Store) SetAdminMode(ctx context.Context, enabled bool) {
	s.mu.Lock()
	s.state.IsAdminMode = enabled
	s.mu.Unlock()
	s.persist(ctx)
}

// run wraps every asynchronous action: the error field is cleared, loading
// is raised for the duration and any failure, including a panic, ends up
// in the error field.
func (s *Store) run(name string, action func() error) (err error) {
	s.mu.Lock()
	s.state.Error = ""
	s.inFlight++
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: unexpected failure: %v", name, r)
		}
		s.mu.Lock()
		if err != nil {
			s.state.Error = errorMessage(err)
		}
		s.inFlight--
		s.mu.Unlock()
	}()

	if err = action(); err != nil {
		log.Printf("Error in %s: %v", name, err)
	}
	return err
}

func errorMessage(err error) string {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unexpected error"
}

// commit applies fn to the state under the write lock.
func (s *Store) commit(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}
