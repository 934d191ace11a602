package usecase

import (
	"context"

	"subhub/internal/domain/entity"
)

// DashboardSummary aggregates everything the dashboard page renders in one response.
type DashboardSummary struct {
	Stats               entity.DashboardStats    `json:"stats"`
	TopPlatforms        []entity.PlatformRevenue `json:"topPlatforms"`
	ExpiryChart         []entity.ExpiryBucket    `json:"expiryChart"`
	RecentSubscriptions []*SubscriptionView      `json:"recentSubscriptions"`
}

// DashboardUsecase defines the interface for the dashboard aggregation.
type DashboardUsecase interface {
	// GetStats computes the dashboard summary over subscriptions whose start
	// date falls inside the requested time frame.
	GetStats(ctx context.Context, timeFrame entity.TimeFrame) (*DashboardSummary, error)
}
