package derive

import (
	"math"
	"sort"
	"time"

	"brew_co/internal/models"

	"github.com/shopspring/decimal"
)

const (
	topSellerCount     = 3
	loyaltyLeaderCount = 3
	minBarPercentage   = 10
	changeWindow       = 24 * time.Hour
)

// ComputeAnalytics aggregates the dashboard figures from every known order,
// its lines and the member list.
func ComputeAnalytics(orders []models.Order, items []models.OrderItem, users []models.User, now time.Time) models.AnalyticsData {
	var current, previous []models.Order
	for _, o := range orders {
		age := now.Sub(o.CreatedAt)
		switch {
		case age < changeWindow:
			current = append(current, o)
		case age < 2*changeWindow:
			previous = append(previous, o)
		}
	}

	revenue := Revenue(orders)
	return models.AnalyticsData{
		TotalOrders:    len(orders),
		OrderChange:    PercentChange(float64(len(current)), float64(len(previous))),
		Revenue:        revenue.Round(0).IntPart(),
		RevenueChange:  PercentChange(Revenue(current).InexactFloat64(), Revenue(previous).InexactFloat64()),
		ActiveMembers:  ActiveMembers(orders),
		MemberChange:   PercentChange(float64(ActiveMembers(current)), float64(ActiveMembers(previous))),
		PeakHour:       PeakHour(orders, now.Location()),
		TopSellers:     TopSellers(items, topSellerCount),
		LoyaltyLeaders: LoyaltyLeaders(users, loyaltyLeaderCount, now),
	}
}

// Revenue sums totals of orders that reached Ready or Completed.
func Revenue(orders []models.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if o.Status == models.StatusReady || o.Status == models.StatusCompleted {
			sum = sum.Add(o.Total)
		}
	}
	return sum
}

// ActiveMembers counts distinct customer names. It undercounts customers
// sharing a name and is only a lower bound.
func ActiveMembers(orders []models.Order) int {
	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		seen[o.CustomerName] = struct{}{}
	}
	return len(seen)
}

// PercentChange returns the whole-percent change from previous to current.
// With no previous value any growth counts as 100%.
func PercentChange(current, previous float64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round((current - previous) / previous * 100))
}

// PeakHour returns the hour of day with the most orders, formatted like
// "1:00 PM". Ties go to the earlier hour.
func PeakHour(orders []models.Order, loc *time.Location) string {
	if len(orders) == 0 {
		return "N/A"
	}
	var counts [24]int
	for _, o := range orders {
		counts[o.CreatedAt.In(loc).Hour()]++
	}
	peak := 0
	for h := 1; h < 24; h++ {
		if counts[h] > counts[peak] {
			peak = h
		}
	}
	return time.Date(2000, 1, 1, peak, 0, 0, 0, time.UTC).Format("3:04 PM")
}

// TopSellers ranks product names by summed quantity. Equal counts keep the
// order in which the names were first seen.
func TopSellers(items []models.OrderItem, limit int) []models.TopSeller {
	counts := make(map[string]int)
	var names []string
	for _, item := range items {
		if _, ok := counts[item.ProductName]; !ok {
			names = append(names, item.ProductName)
		}
		counts[item.ProductName] += item.Quantity
	}

	sort.SliceStable(names, func(i, j int) bool {
		return counts[names[i]] > counts[names[j]]
	})
	if len(names) > limit {
		names = names[:limit]
	}

	sellers := make([]models.TopSeller, 0, len(names))
	if len(names) == 0 {
		return sellers
	}
	top := counts[names[0]]
	for _, name := range names {
		pct := minBarPercentage
		if top > 0 {
			pct = int(math.Round(float64(counts[name]) / float64(top) * 100))
			if pct < minBarPercentage {
				pct = minBarPercentage
			}
		}
		sellers = append(sellers, models.TopSeller{Name: name, Count: counts[name], Percentage: pct})
	}
	return sellers
}

func LoyaltyLeaders(users []models.User, limit int, now time.Time) []models.LoyaltyLeader {
	ranked := append([]models.User(nil), users...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LoyaltyPoints > ranked[j].LoyaltyPoints
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	leaders := make([]models.LoyaltyLeader, 0, len(ranked))
	for _, u := range ranked {
		lastVisit := "Never"
		if u.LastVisitAt != nil {
			lastVisit = TimeAgo(*u.LastVisitAt, now)
		}
		leaders = append(leaders, models.LoyaltyLeader{
			Name:      u.FullName,
			Points:    u.LoyaltyPoints,
			LastVisit: lastVisit,
			AvatarURL: u.AvatarURL,
		})
	}
	return leaders
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
