// Package fixtures holds the static seed data behind mock mode. Every
// function returns freshly built values; callers may mutate what they get
// without affecting later calls.
package fixtures

import (
	"time"

	"brew_co/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	imgCappuccino   = "/images/cappuccino.jpg"
	imgColdBrew     = "/images/cold-brew.jpg"
	imgPumpkinSpice = "/images/pumpkin-spice.jpg"
	imgMatcha       = "/images/matcha.jpg"
	imgChocoCrois   = "/images/choco-croissant.jpg"
	imgEspresso     = "/images/espresso.jpg"
	imgCroissant    = "/images/croissant.jpg"
	imgStaff1       = "/images/staff-1.jpg"
	imgStaff2       = "/images/staff-2.jpg"
	imgStaff3       = "/images/staff-3.jpg"
	imgVanilla      = "/images/vanilla-syrup.jpg"
	imgOatMilk      = "/images/oat-milk.jpg"
	imgCups         = "/images/cups.jpg"
	imgBeans        = "/images/beans.jpg"
)

// DefaultStoreID is the location mock orders, staff and inventory belong to.
const DefaultStoreID = "1"

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Products(now time.Time) []models.Product {
	return []models.Product{
		{ID: "1", Name: "Cappuccino", Description: "With oat milk foam", Price: money("4.50"), ImageURL: imgCappuccino, Category: "Hot Coffee", IsAvailable: true, IsPopular: true, CreatedAt: now},
		{ID: "2", Name: "Cold Brew", Description: "Smooth & strong", Price: money("5.00"), ImageURL: imgColdBrew, Category: "Iced Coffee", IsAvailable: true, IsPopular: true, CreatedAt: now},
		{ID: "3", Name: "Pumpkin Spice", Description: "Limited time only", Price: money("6.20"), ImageURL: imgPumpkinSpice, Category: "Seasonal", IsAvailable: true, IsPopular: true, CreatedAt: now},
		{ID: "4", Name: "Matcha Latte", Description: "Ceremonial grade", Price: money("5.50"), ImageURL: imgMatcha, Category: "Tea", IsAvailable: true, CreatedAt: now},
		{ID: "5", Name: "Choco Croissant", Description: "Freshly baked", Price: money("3.80"), ImageURL: imgChocoCrois, Category: "Pastries", IsAvailable: true, CreatedAt: now},
		{ID: "6", Name: "Espresso", Description: "Single origin beans", Price: money("3.00"), ImageURL: imgEspresso, Category: "Hot Coffee", IsAvailable: true, CreatedAt: now},
	}
}

func Stores(now time.Time) []models.Store {
	return []models.Store{
		{ID: "1", Name: "Main St. Roastery", Address: "123 Main Street", Distance: "0.2 mi", Rating: 4.8, IsOpen: true, ClosingTime: "8 PM", BusyLevel: models.BusyLow, ImageURL: "/images/store-main.jpg", HasMobileOrder: true, CreatedAt: now},
		{ID: "2", Name: "Westside Espresso", Address: "450 West Ave", Distance: "1.5 mi", Rating: 4.2, IsOpen: true, ClosingTime: "6 PM", BusyLevel: models.BusyHigh, ImageURL: "/images/store-west.jpg", HasDriveThru: true, HasMobileOrder: true, CreatedAt: now},
		{ID: "3", Name: "Uptown Brews", Address: "88 North Blvd", Distance: "2.8 mi", Rating: 4.5, IsOpen: false, ClosingTime: "6 AM", BusyLevel: models.BusyLow, ImageURL: "/images/store-uptown.jpg", HasDriveThru: true, CreatedAt: now},
	}
}

func Staff(now time.Time) []models.Staff {
	return []models.Staff{
		{ID: "1", StoreID: DefaultStoreID, Name: "Sarah Jenkins", Role: "Head Barista", Status: models.StaffActive, ImageURL: imgStaff1, Shift: "06:00 - 14:00", CreatedAt: now},
		{ID: "2", StoreID: DefaultStoreID, Name: "Mike Ross", Role: "Shift Manager", Status: models.StaffInactive, ImageURL: imgStaff2, Shift: "14:00 - 22:00", CreatedAt: now},
		{ID: "3", StoreID: DefaultStoreID, Name: "Elena Rodriguez", Role: "Barista", Status: models.StaffOnShift, ImageURL: imgStaff3, Shift: "09:00 - 17:00", CreatedAt: now},
		{ID: "4", StoreID: DefaultStoreID, Name: "John Doe", Role: "Trainee", Status: models.StaffActive, Shift: "12:00 - 18:00", CreatedAt: now},
	}
}

func Inventory(now time.Time) []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "1", StoreID: DefaultStoreID, Name: "Vanilla Syrup", Category: "Syrups", Quantity: "1 Bottle Left", Percentage: 15, Status: models.InventoryCritical, ImageURL: imgVanilla, CreatedAt: now},
		{ID: "2", StoreID: DefaultStoreID, Name: "Oat Milk (Barista)", Category: "Dairy Alt", Quantity: "12L", Percentage: 60, Status: models.InventoryHealthy, ImageURL: imgOatMilk, CreatedAt: now},
		{ID: "3", StoreID: DefaultStoreID, Name: "12oz Cups", Category: "Supplies", Quantity: "150", Percentage: 30, Status: models.InventoryLow, ImageURL: imgCups, CreatedAt: now},
		{ID: "4", StoreID: DefaultStoreID, Name: "Ethiopian Yirgacheffe", Category: "Beans", Quantity: "8.5kg", Percentage: 85, Status: models.InventoryHealthy, ImageURL: imgBeans, CreatedAt: now},
	}
}

func Users(now time.Time) []models.User {
	visit := func(d time.Duration) *time.Time {
		t := now.Add(-d)
		return &t
	}
	return []models.User{
		{ID: "u1", Email: "sarah.j@example.com", FullName: "Sarah J.", AvatarURL: imgStaff1, LoyaltyPoints: 4500, LastVisitAt: visit(2 * time.Hour), CreatedAt: now},
		{ID: "u2", Email: "mike.t@example.com", FullName: "Mike T.", AvatarURL: imgStaff2, LoyaltyPoints: 4200, LastVisitAt: visit(26 * time.Hour), CreatedAt: now},
		{ID: "u3", Email: "emma.w@example.com", FullName: "Emma W.", AvatarURL: imgStaff3, LoyaltyPoints: 3900, LastVisitAt: visit(72 * time.Hour), CreatedAt: now},
		{ID: "u4", Email: "alex@example.com", FullName: "Alex", LoyaltyPoints: 850, LastVisitAt: visit(3 * time.Hour), CreatedAt: now},
	}
}

func Reviews(now time.Time) []models.Review {
	return []models.Review{
		{ID: "1", UserID: "u5", ProductID: "1", CustomerName: "Alice M.", AvatarURL: "/images/avatar-alice.jpg", ProductName: "Large Latte", Rating: 5, ReviewText: "Great espresso! The foam was perfect, and the service was super quick this morning.", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "2", UserID: "u6", ProductID: "6", CustomerName: "John D.", AvatarURL: "/images/avatar-john.jpg", ProductName: "Americano", Rating: 2, ReviewText: "Coffee was cold upon arrival. Not what I expected for the price.", CreatedAt: now.Add(-5 * time.Hour)},
		{ID: "3", UserID: "u7", ProductID: "1", CustomerName: "Sarah L.", AvatarURL: "/images/avatar-sarah.jpg", ProductName: "Cappuccino", Rating: 4, ReviewText: "Good, but forgot the sugar I requested in the notes.", IsReplied: true, ReplyText: "Sorry about that, your next one is on us!", CreatedAt: now.Add(-26 * time.Hour)},
	}
}

func Campaigns(now time.Time) []models.Campaign {
	return []models.Campaign{
		{ID: "1", Name: "Autumn Pumpkin Week", OfferType: models.OfferPercent, DiscountValue: money("15"), MinPurchase: money("5"), StartDate: now.Add(-72 * time.Hour), EndDate: now.Add(96 * time.Hour), TargetAudience: "all", Status: models.CampaignActive, CreatedAt: now.Add(-96 * time.Hour)},
		{ID: "2", Name: "Pastry Pairing", OfferType: models.OfferBOGO, DiscountValue: money("0"), MinPurchase: money("8"), StartDate: now.Add(168 * time.Hour), EndDate: now.Add(336 * time.Hour), TargetAudience: "loyal", Status: models.CampaignDraft, CreatedAt: now.Add(-24 * time.Hour)},
	}
}

func Notifications(now time.Time) []models.NotificationHistoryItem {
	return []models.NotificationHistoryItem{
		{ID: "1", Title: "Pumpkin Spice is back", Message: "Our seasonal favourite returns today.", Audience: models.AudienceAll, Delivery: models.DeliverNow, Status: models.NotificationSent, TargetCount: 2400, CreatedAt: now.Add(-48 * time.Hour)},
	}
}

func Rewards() []models.Reward {
	return []models.Reward{
		{ID: "1", Name: "Free Coffee", PointsCost: 100, ImageURL: imgCappuccino, Description: "Any size, any style"},
		{ID: "2", Name: "Free Pastry", PointsCost: 75, ImageURL: imgCroissant, Description: "Choose from our bakery"},
		{ID: "3", Name: "50% Off Drink", PointsCost: 50, ImageURL: imgColdBrew, Description: "Valid on any beverage"},
	}
}

type orderSeed struct {
	id       string
	number   int
	customer string
	status   models.OrderStatus
	age      time.Duration
	lines    []lineSeed
}

type lineSeed struct {
	productID string
	name      string
	image     string
	price     string
	qty       int
	size      models.Size
	custom    []string
}

var orderSeeds = []orderSeed{
	{id: "ord-301", number: 301, customer: "Alex", status: models.StatusCompleted, age: 3 * time.Hour, lines: []lineSeed{
		{name: "Vanilla Latte", price: "4.50", qty: 1, size: models.SizeMedium, image: imgCappuccino},
		{name: "Croissant", price: "3.80", qty: 1, size: models.SizeMedium, image: imgCroissant},
	}},
	{id: "ord-302", number: 302, customer: "Alex", status: models.StatusCompleted, age: 27 * time.Hour, lines: []lineSeed{
		{productID: "2", name: "Cold Brew", price: "5.00", qty: 1, size: models.SizeLarge, image: imgColdBrew, custom: []string{"Oat Milk"}},
		{name: "Oat Milk", price: "1.50", qty: 1, size: models.SizeMedium, image: imgOatMilk},
	}},
	{id: "ord-303", number: 303, customer: "Alex", status: models.StatusCompleted, age: 5 * 24 * time.Hour, lines: []lineSeed{
		{productID: "1", name: "Cappuccino", price: "4.50", qty: 1, size: models.SizeSmall, image: imgCappuccino},
		{productID: "6", name: "Espresso", price: "3.00", qty: 1, size: models.SizeMedium, image: imgEspresso},
	}},
	{id: "ord-305", number: 305, customer: "Sarah J.", status: models.StatusPending, age: 12*time.Minute + 4*time.Second, lines: []lineSeed{
		{name: "Iced Latte", price: "4.80", qty: 1, size: models.SizeMedium, image: imgColdBrew, custom: []string{"Oat Milk", "Vanilla Syrup"}},
	}},
	{id: "ord-306", number: 306, customer: "Mike T.", status: models.StatusPending, age: 45 * time.Second, lines: []lineSeed{
		{name: "Americano", price: "3.50", qty: 1, size: models.SizeMedium, image: imgColdBrew, custom: []string{"Black", "No Sugar"}},
	}},
	{id: "ord-307", number: 307, customer: "David L.", status: models.StatusPreparing, age: 4*time.Minute + 12*time.Second, lines: []lineSeed{
		{productID: "1", name: "Cappuccino", price: "4.50", qty: 2, size: models.SizeMedium, image: imgCappuccino, custom: []string{"Extra Hot"}},
	}},
	{id: "ord-308", number: 308, customer: "Jenny W.", status: models.StatusPending, age: 12 * time.Second, lines: []lineSeed{
		{name: "Pour Over", price: "5.20", qty: 1, size: models.SizeMedium, image: imgCroissant},
		{name: "Croissant", price: "3.80", qty: 1, size: models.SizeMedium, image: imgCroissant},
	}},
}

// Orders returns historical and in-queue orders with their line items,
// timestamped relative to now so queue timers start where the fixtures say.
func Orders(now time.Time) ([]models.Order, []models.OrderItem) {
	orders := make([]models.Order, 0, len(orderSeeds))
	var items []models.OrderItem
	for _, seed := range orderSeeds {
		createdAt := now.Add(-seed.age)
		total := decimal.Zero
		for i, line := range seed.lines {
			price := money(line.price)
			total = total.Add(price.Mul(decimal.NewFromInt(int64(line.qty))))
			items = append(items, models.OrderItem{
				ID:             seed.id + "-" + string(rune('a'+i)),
				OrderID:        seed.id,
				ProductID:      line.productID,
				ProductName:    line.name,
				ImageURL:       line.image,
				UnitPrice:      price,
				Quantity:       line.qty,
				Size:           line.size,
				Customizations: datatypes.NewJSONSlice(append([]string(nil), line.custom...)),
				CreatedAt:      createdAt,
			})
		}
		orders = append(orders, models.Order{
			ID:           seed.id,
			OrderNumber:  seed.number,
			StoreID:      DefaultStoreID,
			CustomerName: seed.customer,
			Status:       seed.status,
			Total:        total,
			CreatedAt:    createdAt,
		})
	}
	return orders, items
}
