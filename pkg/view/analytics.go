package view

// Chart view models for the analytics page. The numbers are computed
// server-side from the store's in-memory lists; the templates only render.

type MonthCount struct {
	Month string // "2025-06"
	Count int
	Pct   int // bar height, 0-100 relative to the max month
}

type RatingCount struct {
	Rating int
	Count  int
	Pct    int
}

type CategoryCount struct {
	Category string
	Count    int
	Active   int
}

type KeyMetrics struct {
	TotalProducts  int
	TotalStock     int
	AvgPrice       string
	TotalUsers     int
	AdminCount     int
	TotalReviews   int
	ApprovedPct    int
	TotalFaqs      int
	ActiveFaqCount int
}

type AnalyticsPage struct {
	Layout
	Metrics     KeyMetrics
	UsersGrowth []MonthCount
	Ratings     []RatingCount
	FaqsByCat   []CategoryCount
	LoadError   string
}

type HomePage struct {
	Layout
	Metrics     KeyMetrics
	Admins      []UserListItem
	RecentUsers []UserListItem
	LoadError   string
}
