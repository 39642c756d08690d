package store

import (
	"context"
	"fmt"

	"brew_co/internal/models"
	"brew_co/internal/services"

	"golang.org/x/sync/errgroup"
)

// RefreshAdminData reloads every admin view concurrently and commits them
// together once all succeed.
func (s *Store) RefreshAdminData(ctx context.Context) error {
	return s.run("refreshAdminData", func() error {
		var (
			queue         []models.OrderQueueItem
			analytics     *models.AnalyticsData
			feedback      []models.Review
			campaigns     []models.Campaign
			performance   []models.StaffPerformance
			notifications []models.NotificationHistoryItem
			menu          []models.Product
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(guard(func() (err error) { queue, err = s.svc.Orders.GetOrderQueue(gctx); return }))
		g.Go(guard(func() (err error) { analytics, err = s.svc.Analytics.GetAnalytics(gctx); return }))
		g.Go(guard(func() (err error) { feedback, err = s.svc.Feedback.GetFeedbackReviews(gctx); return }))
		g.Go(guard(func() (err error) { campaigns, err = s.svc.Campaigns.GetCampaigns(gctx); return }))
		g.Go(guard(func() (err error) { performance, err = s.svc.Staff.GetStaffPerformance(gctx, ""); return }))
		g.Go(guard(func() (err error) { notifications, err = s.svc.Notifications.GetNotificationHistory(gctx); return }))
		g.Go(guard(func() (err error) { menu, err = s.svc.Menu.GetMenuProducts(gctx); return }))
		if err := g.Wait(); err != nil {
			return err
		}

		s.commit(func(st *State) {
			st.OrderQueue = queue
			st.Analytics = analytics
			st.Feedback = feedback
			st.Campaigns = campaigns
			st.StaffPerformance = performance
			st.NotificationHistory = notifications
			st.MenuItems = menu
		})
		return nil
	})
}

// refreshQueueAndAnalytics reloads both views that depend on orders. It
// returns only after both have been committed.
func (s *Store) refreshQueueAndAnalytics(ctx context.Context) error {
	var (
		queue     []models.OrderQueueItem
		analytics *models.AnalyticsData
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(guard(func() (err error) { queue, err = s.svc.Orders.GetOrderQueue(gctx); return }))
	g.Go(guard(func() (err error) { analytics, err = s.svc.Analytics.GetAnalytics(gctx); return }))
	if err := g.Wait(); err != nil {
		return err
	}
	s.commit(func(st *State) {
		st.OrderQueue = queue
		st.Analytics = analytics
	})
	return nil
}

func (s *Store) LoadQueue(ctx context.Context) error {
	return s.run("loadQueue", func() error {
		queue, err := s.svc.Orders.GetOrderQueue(ctx)
		if err != nil {
			return err
		}
		s.commit(func(st *State) { st.OrderQueue = queue })
		return nil
	})
}

// TransitionQueueOrder applies a barista action and refreshes the queue
// and analytics before returning.
func (s *Store) TransitionQueueOrder(ctx context.Context, orderID string, action models.QueueAction) error {
	return s.run("transitionQueueOrder", func() error {
		if _, err := s.svc.Orders.TransitionQueueOrder(ctx, orderID, action); err != nil {
			return err
		}
		return s.refreshQueueAndAnalytics(ctx)
	})
}

func (s *Store) LoadAnalytics(ctx context.Context) error {
	return s.run("loadAnalytics", func() error {
		analytics, err := s.svc.Analytics.GetAnalytics(ctx)
		if err != nil {
			return err
		}
		s.commit(func(st *State) { st.Analytics = analytics })
		return nil
	})
}

func (s *Store) LoadFeedback(ctx context.Context) error {
	return s.run("loadFeedback", func() error {
		reviews, err := s.svc.Feedback.GetFeedbackReviews(ctx)
		if err != nil {
			return err
		}
		s.commit(func(st *State) { st.Feedback = reviews })
		return nil
	})
}

func (s *Store) ReplyToFeedback(ctx context.Context, reviewID, replyText string) error {
	return s.run("replyToFeedback", func() error {
		review, err := s.svc.Feedback.ReplyToFeedback(ctx, reviewID, replyText)
		if err != nil {
			return err
		}
		s.commit(func(st *State) {
			st.Feedback = replaceByID(st.Feedback, *review, func(r models.Review) string { return r.ID })
		})
		return nil
	})
}

func (s *Store) LoadStaffPerformance(ctx context.Context) error {
	return s.run("loadStaffPerformance", func() error {
		performance, err := s.svc.Staff.GetStaffPerformance(ctx, "")
		if err != nil {
			return err
		}
		s.commit(func(st *State) { st.StaffPerformance = performance })
		return nil
	})
}

func (s *Store) LoadCampaigns(ctx context.Context) error {
	return s.run("loadCampaigns", func() error {
		campaigns, err := s.svc.Campaigns.GetCampaigns(ctx)
		if err != nil {
			return err
		}
		s.commit(func(st *State) { st.Campaigns = campaigns })
		return nil
	})
}

// SaveCampaign creates or updates a campaign and reflects it in the cached
// list without a reload.
func (s *Store) SaveCampaign(ctx context.Context, campaign models.Campaign) (*models.Campaign, error) {
	var saved *models.Campaign
	err := s.run("saveCampaign", func() error {
		var err error
		if saved, err = s.svc.Campaigns.SaveCampaign(ctx, &campaign); err != nil {
			return err
		}
		s.commit(func(st *State) {
			st.Campaigns = upsertByID(st.Campaigns, *saved, func(c models.Campaign) string { return c.ID })
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *Store) DeleteCampaign(ctx context.Context, id string) error {
	return s.run("deleteCampaign", func() error {
		if err := s.svc.Campaigns.DeleteCampaign(ctx, id); err != nil {
			return err
		}
		s.commit(func(st *State) {
			st.Campaigns = removeByID(st.Campaigns, id, func(c models.Campaign) string { return c.ID })
		})
		return nil
	})
}

func (s *Store) LoadNotificationHistory(ctx context.Context) error {
	return s.run("loadNotificationHistory", func() error {
		history, err := s.svc.Notifications.GetNotificationHistory(ctx)
		if err != nil {
			return err
		}
		s.commit(func(st *State) { st.NotificationHistory = history })
		return nil
	})
}

func (s *Store) SendNotification(ctx context.Context, input services.NotificationInput) (*models.NotificationHistoryItem, error) {
	var item *models.NotificationHistoryItem
	err := s.run("sendNotification", func() error {
		var err error
		if item, err = s.svc.Notifications.SendNotification(ctx, input); err != nil {
			return err
		}
		s.commit(func(st *State) {
			st.NotificationHistory = append([]models.NotificationHistoryItem{*item}, st.NotificationHistory...)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Store) LoadMenuItems(ctx context.Context) error {
	return s.run("loadMenuItems", func() error {
		menu, err := s.svc.Menu.GetMenuProducts(ctx)
		if err != nil {
			return err
		}
		s.commit(func(st *State) { st.MenuItems = menu })
		return nil
	})
}

func (s *Store) CreateMenuItem(ctx context.Context, product models.Product) (*models.Product, error) {
	err := s.run("createMenuItem", func() error {
		if err := s.svc.Menu.CreateMenuItem(ctx, &product); err != nil {
			return err
		}
		s.commit(func(st *State) {
			st.MenuItems = append([]models.Product{product}, st.MenuItems...)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) UpdateMenuItem(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	var product *models.Product
	err := s.run("updateMenuItem", func() error {
		var err error
		if product, err = s.svc.Menu.UpdateMenuItem(ctx, id, update); err != nil {
			return err
		}
		s.commit(func(st *State) {
			st.MenuItems = replaceByID(st.MenuItems, *product, func(p models.Product) string { return p.ID })
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Store) DeleteMenuItem(ctx context.Context, id string) error {
	return s.run("deleteMenuItem", func() error {
		if err := s.svc.Menu.DeleteMenuItem(ctx, id); err != nil {
			return err
		}
		s.commit(func(st *State) {
			st.MenuItems = removeByID(st.MenuItems, id, func(p models.Product) string { return p.ID })
		})
		return nil
	})
}

func (s *Store) LoadInventory(ctx context.Context, storeID string) error {
	return s.run("loadInventory", func() error {
		items, err := s.svc.Inventory.GetInventory(ctx, storeID)
		if err != nil {
			return err
		}
		s.commit(func(st *State) { st.Inventory = items })
		return nil
	})
}

func (s *Store) UpdateInventoryItem(ctx context.Context, id string, update models.InventoryUpdate) (*models.InventoryItem, error) {
	var item *models.InventoryItem
	err := s.run("updateInventoryItem", func() error {
		var err error
		if item, err = s.svc.Inventory.UpdateInventoryItem(ctx, id, update); err != nil {
			return err
		}
		s.commit(func(st *State) {
			st.Inventory = replaceByID(st.Inventory, *item, func(i models.InventoryItem) string { return i.ID })
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Store) LoadStores(ctx context.Context) error {
	return s.run("loadStores", func() error {
		stores, err := s.svc.Stores.GetStores(ctx)
		if err != nil {
			return err
		}
		s.commit(func(st *State) { st.Stores = stores })
		return nil
	})
}

func (s *Store) LoadOrderHistory(ctx context.Context, userID string) error {
	return s.run("loadOrderHistory", func() error {
		orders, err := s.svc.Orders.GetOrderHistory(ctx, userID)
		if err != nil {
			return err
		}
		s.commit(func(st *State) { st.OrderHistory = orders })
		return nil
	})
}

// guard turns a panic inside a concurrent load into an error so it reaches
// the action's error handling.
func guard(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("unexpected failure: %v", r)
			}
		}()
		return fn()
	}
}
