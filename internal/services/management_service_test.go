package services

import (
	"context"
	"testing"
	"time"

	"brew_co/internal/models"
	"brew_co/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuService_CRUD(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	item := &models.Product{Name: "  Flat White ", Price: decimal.RequireFromString("4.20"), Category: "Hot Coffee", IsAvailable: true}
	require.NoError(t, svc.Menu.CreateMenuItem(ctx, item))
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Flat White", item.Name)
	assert.False(t, item.CreatedAt.IsZero())

	price := decimal.RequireFromString("4.40")
	updated, err := svc.Menu.UpdateMenuItem(ctx, item.ID, models.ProductUpdate{Price: &price})
	require.NoError(t, err)
	assert.True(t, price.Equal(updated.Price))
	assert.Equal(t, "Flat White", updated.Name)

	require.NoError(t, svc.Menu.DeleteMenuItem(ctx, item.ID))
	_, err = svc.Menu.GetProductByID(ctx, item.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Menu.DeleteMenuItem(ctx, item.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.True(t, IsValidation(err))
}

func TestMenuService_Validation(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	err := svc.Menu.CreateMenuItem(ctx, &models.Product{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	negative := decimal.RequireFromString("-1")
	_, err = svc.Menu.UpdateMenuItem(ctx, "1", models.ProductUpdate{Price: &negative})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	product, err := svc.Menu.GetProductByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("4.50").Equal(product.Price))
}

func TestMenuService_AvailableListsPopularFirst(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	off := false
	_, err := svc.Menu.UpdateMenuItem(ctx, "2", models.ProductUpdate{IsAvailable: &off})
	require.NoError(t, err)

	products, err := svc.Menu.GetAvailableProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 5)
	assert.True(t, products[0].IsPopular)
	assert.False(t, products[len(products)-1].IsPopular)
	for _, p := range products {
		assert.NotEqual(t, "2", p.ID)
	}
}

func TestCampaignService_Save(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	start := time.Now()

	campaign := &models.Campaign{
		Name:          "Happy Hour",
		OfferType:     models.OfferFixed,
		DiscountValue: decimal.RequireFromString("2"),
		StartDate:     start,
		EndDate:       start.Add(2 * time.Hour),
	}
	created, err := svc.Campaigns.SaveCampaign(ctx, campaign)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.CampaignDraft, created.Status)

	edit := *created
	edit.Status = models.CampaignActive
	edit.CreatedAt = time.Time{}
	saved, err := svc.Campaigns.SaveCampaign(ctx, &edit)
	require.NoError(t, err)
	assert.Equal(t, created.ID, saved.ID)
	assert.Equal(t, models.CampaignActive, saved.Status)
	assert.Equal(t, created.CreatedAt, saved.CreatedAt)

	campaigns, err := svc.Campaigns.GetCampaigns(ctx)
	require.NoError(t, err)
	assert.Len(t, campaigns, 3)

	require.NoError(t, svc.Campaigns.DeleteCampaign(ctx, created.ID))
	campaigns, err = svc.Campaigns.GetCampaigns(ctx)
	require.NoError(t, err)
	assert.Len(t, campaigns, 2)
}

func TestCampaignService_Validation(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	now := time.Now()

	cases := map[string]*models.Campaign{
		"name":           {OfferType: models.OfferFixed},
		"offer_type":     {Name: "x", OfferType: "gift"},
		"discount_value": {Name: "x", OfferType: models.OfferPercent, DiscountValue: decimal.RequireFromString("120")},
		"end_date":       {Name: "x", OfferType: models.OfferBOGO, StartDate: now, EndDate: now.Add(-time.Hour)},
		"status":         {Name: "x", OfferType: models.OfferBOGO, Status: "Paused"},
	}
	for field, campaign := range cases {
		_, err := svc.Campaigns.SaveCampaign(ctx, campaign)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, field)
		assert.Equal(t, field, verr.Field)
	}

	_, err := svc.Campaigns.SaveCampaign(ctx, &models.Campaign{ID: "missing", Name: "x", OfferType: models.OfferBOGO})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNotificationService_Send(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	sent, err := svc.Notifications.SendNotification(ctx, NotificationInput{
		Title: "New menu", Message: "Try it", Audience: models.AudienceLoyal, Delivery: models.DeliverNow,
	})
	require.NoError(t, err)
	assert.Equal(t, models.NotificationSent, sent.Status)
	assert.Equal(t, 860, sent.TargetCount)
	assert.Nil(t, sent.ScheduledFor)

	past := time.Now().Add(-time.Hour)
	scheduled, err := svc.Notifications.SendNotification(ctx, NotificationInput{
		Title: "Weekend", Message: "Soon", Audience: models.AudienceNew, Delivery: models.DeliverScheduled, ScheduledFor: &past,
	})
	require.NoError(t, err)
	assert.Equal(t, models.NotificationScheduled, scheduled.Status)
	assert.Equal(t, 310, scheduled.TargetCount)
	require.NotNil(t, scheduled.ScheduledFor)
	assert.True(t, past.Equal(*scheduled.ScheduledFor))

	history, err := svc.Notifications.GetNotificationHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestNotificationService_Validation(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	cases := map[string]NotificationInput{
		"title":         {Message: "m", Audience: models.AudienceAll, Delivery: models.DeliverNow},
		"message":       {Title: "t", Audience: models.AudienceAll, Delivery: models.DeliverNow},
		"audience":      {Title: "t", Message: "m", Audience: "vip", Delivery: models.DeliverNow},
		"delivery":      {Title: "t", Message: "m", Audience: models.AudienceAll, Delivery: "later"},
		"scheduled_for": {Title: "t", Message: "m", Audience: models.AudienceAll, Delivery: models.DeliverScheduled},
	}
	for field, input := range cases {
		_, err := svc.Notifications.SendNotification(ctx, input)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, field)
		assert.Equal(t, field, verr.Field)
	}

	history, err := svc.Notifications.GetNotificationHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestFeedbackService(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	reviews, err := svc.Feedback.GetFeedbackReviews(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "2h ago", reviews[0].TimeAgo)

	review, err := svc.Feedback.ReplyToFeedback(ctx, "2", " We're sorry! ")
	require.NoError(t, err)
	assert.True(t, review.IsReplied)
	assert.Equal(t, "We're sorry!", review.ReplyText)
	assert.NotEmpty(t, review.TimeAgo)

	_, err = svc.Feedback.ReplyToFeedback(ctx, "2", "   ")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.Feedback.ReplyToFeedback(ctx, "404", "hi")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStaffService_Performance(t *testing.T) {
	svc, _ := newTestServices(t)

	perf, err := svc.Staff.GetStaffPerformance(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, perf, 4)
	assert.Equal(t, "Elena Rodriguez", perf[0].Name)
	assert.Equal(t, 142, perf[0].OrdersCompleted)

	none, err := svc.Staff.GetStaff(context.Background(), "99")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInventoryService_Update(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	pct := 5
	item, err := svc.Inventory.UpdateInventoryItem(ctx, "2", models.InventoryUpdate{Percentage: &pct})
	require.NoError(t, err)
	assert.Equal(t, 5, item.Percentage)
	// status is independent of percentage
	assert.Equal(t, models.InventoryHealthy, item.Status)

	items, err := svc.Inventory.GetInventory(ctx, "1")
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Equal(t, "2", items[0].ID)

	tooMuch := 101
	_, err = svc.Inventory.UpdateInventoryItem(ctx, "2", models.InventoryUpdate{Percentage: &tooMuch})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	bad := models.InventoryStatus("Empty")
	_, err = svc.Inventory.UpdateInventoryItem(ctx, "2", models.InventoryUpdate{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.Inventory.UpdateInventoryItem(ctx, "nope", models.InventoryUpdate{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStoreAndUserServices(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	stores, err := svc.Stores.GetStores(ctx)
	require.NoError(t, err)
	require.Len(t, stores, 3)
	assert.Equal(t, "Main St. Roastery", stores[0].Name)

	leaders, err := svc.Users.GetLoyaltyLeaders(ctx, 2)
	require.NoError(t, err)
	require.Len(t, leaders, 2)
	assert.Equal(t, "Sarah J.", leaders[0].Name)
	assert.Equal(t, "Mike T.", leaders[1].Name)

	_, err = svc.Users.GetLoyaltyLeaders(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	rewards, err := svc.Users.GetRewards(ctx)
	require.NoError(t, err)
	assert.Len(t, rewards, 3)
}
