package services

import "brew_co/internal/repository"

// Services groups every domain service over one set of repositories.
type Services struct {
	Orders        OrderService
	Analytics     AnalyticsService
	Menu          MenuService
	Campaigns     CampaignService
	Notifications NotificationService
	Feedback      FeedbackService
	Staff         StaffService
	Inventory     InventoryService
	Stores        StoreService
	Users         UserService
}

func New(repos *repository.Repositories) *Services {
	return &Services{
		Orders:        NewOrderService(repos.Orders, repos.OrderItems),
		Analytics:     NewAnalyticsService(repos.Orders, repos.OrderItems, repos.Users),
		Menu:          NewMenuService(repos.Products),
		Campaigns:     NewCampaignService(repos.Campaigns),
		Notifications: NewNotificationService(repos.Notifications),
		Feedback:      NewFeedbackService(repos.Reviews),
		Staff:         NewStaffService(repos.Staff),
		Inventory:     NewInventoryService(repos.Inventory),
		Stores:        NewStoreService(repos.Stores),
		Users:         NewUserService(repos.Users),
	}
}
