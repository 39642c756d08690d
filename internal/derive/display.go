package derive

import (
	"fmt"
	"time"

	"brew_co/internal/models"
)

// TimeAgo renders the distance between t and now the way review and
// loyalty cards show it.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	case d < 48*time.Hour:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", int(d/(24*time.Hour)))
	}
}

func WithTimeAgo(reviews []models.Review, now time.Time) []models.Review {
	out := make([]models.Review, len(reviews))
	for i, r := range reviews {
		r.TimeAgo = TimeAgo(r.CreatedAt, now)
		out[i] = r
	}
	return out
}

// audienceReach is the estimated number of recipients per audience.
var audienceReach = map[models.NotificationAudience]int{
	models.AudienceAll:      2400,
	models.AudienceLoyal:    860,
	models.AudienceInactive: 540,
	models.AudienceNew:      310,
}

// AudienceReach returns the estimated reach and whether the audience is known.
func AudienceReach(audience models.NotificationAudience) (int, bool) {
	n, ok := audienceReach[audience]
	return n, ok
}

// StaffPerformance attaches placeholder performance figures to each staff
// member. The numbers depend only on position in the list and are not
// aggregated from real orders.
func StaffPerformance(staff []models.Staff) []models.StaffPerformance {
	out := make([]models.StaffPerformance, len(staff))
	for i, member := range staff {
		completed := 142 - 17*i
		if completed < 12 {
			completed = 12
		}
		rating := 4.9 - 0.1*float64(i)
		if rating < 3.5 {
			rating = 3.5
		}
		prep := 150*time.Second + time.Duration(i)*20*time.Second
		out[i] = models.StaffPerformance{
			Staff:           member,
			OrdersCompleted: completed,
			Rating:          roundTo(rating, 1),
			AvgPrepTime:     fmt.Sprintf("%d:%02d", int(prep/time.Minute), int(prep%time.Minute/time.Second)),
			SalesGenerated:  float64(completed * 6),
		}
	}
	return out
}
