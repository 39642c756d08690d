package services

import (
	"context"
	"testing"

	"brew_co/internal/models"
	"brew_co/internal/repository"
	"brew_co/internal/statemachine"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) (*Services, *repository.Repositories) {
	t.Helper()
	repos := repository.New(nil)
	return New(repos), repos
}

func cappuccino() models.Product {
	return models.Product{ID: "1", Name: "Cappuccino", Price: decimal.RequireFromString("4.50"), ImageURL: "/images/cappuccino.jpg"}
}

func queueEntry(queue []models.OrderQueueItem, id string) (models.OrderQueueItem, bool) {
	for _, entry := range queue {
		if entry.ID == id {
			return entry, true
		}
	}
	return models.OrderQueueItem{}, false
}

func TestCreateOrderFromCart_EmptyCart(t *testing.T) {
	svc, repos := newTestServices(t)
	ctx := context.Background()
	before, err := repos.Orders.ListRecent(ctx)
	require.NoError(t, err)

	order, err := svc.Orders.CreateOrderFromCart(ctx, nil, CheckoutDetails{CustomerName: "Alex"})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.True(t, IsValidation(err))
	after, err := repos.Orders.ListRecent(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestCreateOrderFromCart_AppearsInQueue(t *testing.T) {
	svc, repos := newTestServices(t)
	ctx := context.Background()
	cart := []models.CartItem{{Product: cappuccino(), Quantity: 1, Size: models.SizeMedium, Customizations: []string{}}}

	order, err := svc.Orders.CreateOrderFromCart(ctx, cart, CheckoutDetails{CustomerName: "Alex"})
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.True(t, decimal.RequireFromString("4.50").Equal(order.Total))
	assert.Equal(t, 309, order.OrderNumber)
	assert.Equal(t, "Alex", order.CustomerName)

	items, err := repos.OrderItems.GetByOrderID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cappuccino", items[0].ProductName)
	assert.True(t, decimal.RequireFromString("4.50").Equal(items[0].UnitPrice))

	queue, err := svc.Orders.GetOrderQueue(ctx)
	require.NoError(t, err)
	entry, ok := queueEntry(queue, order.ID)
	require.True(t, ok)
	assert.Equal(t, models.QueueNew, entry.Status)
	assert.Equal(t, []models.QueueLine{{Name: "Cappuccino", Quantity: 1}}, entry.Items)
	assert.Equal(t, "309", entry.OrderNumber)
}

func TestCreateOrderFromCart_DefaultsGuest(t *testing.T) {
	svc, _ := newTestServices(t)
	cart := []models.CartItem{{Product: cappuccino(), Quantity: 2, Size: models.SizeLarge}}

	order, err := svc.Orders.CreateOrderFromCart(context.Background(), cart, CheckoutDetails{})
	require.NoError(t, err)

	assert.Equal(t, "Guest", order.CustomerName)
	assert.Equal(t, "1", order.StoreID)
	assert.True(t, decimal.RequireFromString("9.00").Equal(order.Total))
}

func TestCreateOrderFromCart_RejectsBadLine(t *testing.T) {
	svc, _ := newTestServices(t)
	cart := []models.CartItem{{Product: cappuccino(), Quantity: 1, Size: "XL"}}

	_, err := svc.Orders.CreateOrderFromCart(context.Background(), cart, CheckoutDetails{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "cart[0].size", verr.Field)
}

func TestTransitionQueueOrder_Lifecycle(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	order, err := svc.Orders.TransitionQueueOrder(ctx, "ord-305", models.ActionStartBrewing)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, order.Status)

	queue, err := svc.Orders.GetOrderQueue(ctx)
	require.NoError(t, err)
	entry, ok := queueEntry(queue, "ord-305")
	require.True(t, ok)
	assert.Equal(t, models.QueueBrewing, entry.Status)

	_, err = svc.Orders.TransitionQueueOrder(ctx, "ord-305", models.ActionMarkReady)
	require.NoError(t, err)
	order, err = svc.Orders.TransitionQueueOrder(ctx, "ord-305", models.ActionCompleteOrder)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, order.Status)

	queue, err = svc.Orders.GetOrderQueue(ctx)
	require.NoError(t, err)
	_, ok = queueEntry(queue, "ord-305")
	assert.False(t, ok)

	stored, err := svc.Orders.GetOrderByID(ctx, "ord-305")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestTransitionQueueOrder_Cancel(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	order, err := svc.Orders.TransitionQueueOrder(ctx, "ord-307", models.ActionCancelOrder)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, order.Status)

	queue, err := svc.Orders.GetOrderQueue(ctx)
	require.NoError(t, err)
	assert.Len(t, queue, 3)
}

func TestTransitionQueueOrder_Errors(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Orders.TransitionQueueOrder(ctx, "ord-306", models.ActionMarkReady)
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
	assert.True(t, IsValidation(err))

	stored, err := svc.Orders.GetOrderByID(ctx, "ord-306")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)

	_, err = svc.Orders.TransitionQueueOrder(ctx, "missing", models.ActionStartBrewing)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.True(t, IsValidation(err))

	_, err = svc.Orders.TransitionQueueOrder(ctx, "ord-306", "teleport")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.Orders.TransitionQueueOrder(ctx, "ord-301", models.ActionCancelOrder)
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
}

func TestGetOrderHistory(t *testing.T) {
	svc, _ := newTestServices(t)

	orders, err := svc.Orders.GetOrderHistory(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, orders, 7)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt))
	}

	mine, err := svc.Orders.GetOrderHistory(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestAnalytics_TracksCompletedOrders(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	before, err := svc.Analytics.GetAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(22), before.Revenue)
	assert.Equal(t, 7, before.TotalOrders)

	for _, action := range []models.QueueAction{models.ActionMarkReady, models.ActionCompleteOrder} {
		_, err := svc.Orders.TransitionQueueOrder(ctx, "ord-307", action)
		require.NoError(t, err)
	}

	after, err := svc.Analytics.GetAnalytics(ctx)
	require.NoError(t, err)
	// ord-307 is two cappuccinos at 4.50
	assert.Equal(t, int64(31), after.Revenue)
	assert.Equal(t, 7, after.TotalOrders)
	assert.Equal(t, int64(22), before.Revenue)
}

func TestCreatedOrderCountsInAnalytics(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	cart := []models.CartItem{{Product: cappuccino(), Quantity: 3, Size: models.SizeMedium}}

	_, err := svc.Orders.CreateOrderFromCart(ctx, cart, CheckoutDetails{CustomerName: "Robin"})
	require.NoError(t, err)

	data, err := svc.Analytics.GetAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, data.TotalOrders)
	assert.Equal(t, 6, data.ActiveMembers)
	// pending orders do not count towards revenue
	assert.Equal(t, int64(22), data.Revenue)
	require.NotEmpty(t, data.TopSellers)
	assert.Equal(t, models.TopSeller{Name: "Cappuccino", Count: 6, Percentage: 100}, data.TopSellers[0])
}
