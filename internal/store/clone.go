package store

import "brew_co/internal/models"

func cloneCart(cart []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(cart))
	for i, line := range cart {
		line.Customizations = append([]string{}, line.Customizations...)
		out[i] = line
	}
	return out
}

func cloneQueue(queue []models.OrderQueueItem) []models.OrderQueueItem {
	if queue == nil {
		return nil
	}
	out := make([]models.OrderQueueItem, len(queue))
	for i, entry := range queue {
		entry.Items = append([]models.QueueLine(nil), entry.Items...)
		entry.Customizations = append([]string(nil), entry.Customizations...)
		out[i] = entry
	}
	return out
}

func cloneAnalytics(a models.AnalyticsData) models.AnalyticsData {
	a.TopSellers = append([]models.TopSeller(nil), a.TopSellers...)
	a.LoyaltyLeaders = append([]models.LoyaltyLeader(nil), a.LoyaltyLeaders...)
	return a
}

func cloneNotifications(items []models.NotificationHistoryItem) []models.NotificationHistoryItem {
	if items == nil {
		return nil
	}
	out := make([]models.NotificationHistoryItem, len(items))
	for i, item := range items {
		if item.ScheduledFor != nil {
			at := *item.ScheduledFor
			item.ScheduledFor = &at
		}
		out[i] = item
	}
	return out
}

// replaceByID swaps in item where the ids match. Lists without a match are
// returned unchanged.
func replaceByID[T any](list []T, item T, id func(T) string) []T {
	out := append([]T(nil), list...)
	for i := range out {
		if id(out[i]) == id(item) {
			out[i] = item
		}
	}
	return out
}

// upsertByID replaces a matching entry or puts item at the front.
func upsertByID[T any](list []T, item T, id func(T) string) []T {
	for i := range list {
		if id(list[i]) == id(item) {
			return replaceByID(list, item, id)
		}
	}
	return append([]T{item}, list...)
}

func removeByID[T any](list []T, target string, id func(T) string) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if id(v) != target {
			out = append(out, v)
		}
	}
	return out
}
