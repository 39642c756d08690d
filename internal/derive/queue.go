// Package derive holds the pure functions that turn stored entities into
// the views the store serves: queue entries, cart totals, analytics and
// display strings. Nothing here touches storage or the clock; callers pass
// now explicitly.
package derive

import (
	"fmt"
	"strconv"
	"time"

	"brew_co/internal/models"
	"brew_co/internal/statemachine"
)

// CriticalAfter is how long a pending order may wait before it is flagged.
const CriticalAfter = 10 * time.Minute

// QueueStatusFor maps an order status and its age to the barista display
// status.
func QueueStatusFor(status models.OrderStatus, createdAt, now time.Time) models.QueueStatus {
	switch status {
	case models.StatusPreparing:
		return models.QueueBrewing
	case models.StatusReady:
		return models.QueueReady
	case models.StatusPending:
		if now.Sub(createdAt) >= CriticalAfter {
			return models.QueueCritical
		}
		return models.QueueNew
	default:
		return models.QueueReady
	}
}

// FormatTimer renders elapsed time as mm:ss. Minutes keep counting past 59.
func FormatTimer(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	secs := int(elapsed / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func BuildQueueItem(order models.Order, items []models.OrderItem, now time.Time) models.OrderQueueItem {
	entry := models.OrderQueueItem{
		ID:             order.ID,
		CustomerName:   order.CustomerName,
		OrderNumber:    strconv.Itoa(order.OrderNumber),
		Items:          make([]models.QueueLine, 0, len(items)),
		Customizations: []string{},
		Status:         QueueStatusFor(order.Status, order.CreatedAt, now),
		Timer:          FormatTimer(now.Sub(order.CreatedAt)),
	}
	for _, item := range items {
		entry.Items = append(entry.Items, models.QueueLine{Name: item.ProductName, Quantity: item.Quantity})
		entry.Customizations = append(entry.Customizations, item.Customizations...)
		if entry.ImageURL == "" {
			entry.ImageURL = item.ImageURL
		}
	}
	return entry
}

// BuildQueue returns queue entries for the active orders, in the order they
// were given. Completed and canceled orders are skipped.
func BuildQueue(orders []models.Order, items []models.OrderItem, now time.Time) []models.OrderQueueItem {
	byOrder := GroupItems(items)
	queue := make([]models.OrderQueueItem, 0, len(orders))
	for _, order := range orders {
		if !statemachine.IsActive(order.Status) {
			continue
		}
		queue = append(queue, BuildQueueItem(order, byOrder[order.ID], now))
	}
	return queue
}

// GroupItems indexes order lines by order id, keeping their relative order.
func GroupItems(items []models.OrderItem) map[string][]models.OrderItem {
	byOrder := make(map[string][]models.OrderItem)
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	return byOrder
}
