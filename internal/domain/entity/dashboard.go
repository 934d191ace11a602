package entity

// TimeFrame is a client-selected relative date window used to filter
// aggregation inputs by subscription start date.
type TimeFrame string

const (
	TimeFrame7Days  TimeFrame = "7days"
	TimeFrame30Days TimeFrame = "30days"
	TimeFrame90Days TimeFrame = "90days"
	TimeFrameAll    TimeFrame = "all"
)

// Days returns the window length in days, and false for the all-time frame.
func (tf TimeFrame) Days() (int, bool) {
	switch tf {
	case TimeFrame7Days:
		return 7, true
	case TimeFrame30Days:
		return 30, true
	case TimeFrame90Days:
		return 90, true
	default:
		return 0, false
	}
}

// Valid reports whether tf is one of the supported frames.
func (tf TimeFrame) Valid() bool {
	switch tf {
	case TimeFrame7Days, TimeFrame30Days, TimeFrame90Days, TimeFrameAll:
		return true
	default:
		return false
	}
}

// DashboardStats is derived from the current subscription collection.
// It is recomputed on every fetch and never persisted.
type DashboardStats struct {
	TotalCustomers      int     `json:"totalCustomers"`
	ActiveSubscriptions int     `json:"activeSubscriptions"`
	UpcomingExpiries    int     `json:"upcomingExpiries"`
	TotalRevenue        float64 `json:"totalRevenue"`
}

// PlatformRevenue is one row of the top-platforms ranking.
type PlatformRevenue struct {
	PlatformID   string  `json:"platformId"`
	PlatformName string  `json:"platformName"`
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
}

// ExpiryBucket is one calendar-day bucket of the upcoming-expiry chart.
type ExpiryBucket struct {
	Label string `json:"label"` // e.g. "Jan 2"
	Count int    `json:"count"`
}
