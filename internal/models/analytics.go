package models

type TopSeller struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type LoyaltyLeader struct {
	Name      string `json:"name"`
	Points    int    `json:"points"`
	LastVisit string `json:"last_visit"`
	AvatarURL string `json:"avatar"`
}

type AnalyticsData struct {
	TotalOrders    int             `json:"total_orders"`
	OrderChange    int             `json:"order_change"`
	Revenue        int64           `json:"revenue"`
	RevenueChange  int             `json:"revenue_change"`
	ActiveMembers  int             `json:"active_members"`
	MemberChange   int             `json:"member_change"`
	PeakHour       string          `json:"peak_hour"`
	TopSellers     []TopSeller     `json:"top_sellers"`
	LoyaltyLeaders []LoyaltyLeader `json:"loyalty_leaders"`
}
