package impl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"subhub/config"
	"subhub/internal/domain/entity"
	mockRepo "subhub/internal/mocks/repository"
	"subhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardService(t *testing.T) (usecase.DashboardUsecase, *mockRepo.MockSubscriptionRepository) {
	t.Helper()

	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	cfg := &config.Config{
		Dashboard: &config.DashboardConfig{
			UpcomingExpiryDays: 7,
			ExpiryChartDays:    30,
			TopPlatformsLimit:  5,
			RecentLimit:        5,
		},
	}

	svc := NewDashboardService(DashboardServiceParams{
		SubscriptionRepo: subscriptionRepo,
		Config:           cfg,
		Logger:           slog.Default(),
	})

	return svc, subscriptionRepo
}

func buildSubscription(customerID, platformID uuid.UUID, platformName string, startedDaysAgo int, expiresInDays int, cost float64, status entity.SubscriptionStatus) *entity.Subscription {
	now := time.Now()

	return &entity.Subscription{
		ID:         uuid.New(),
		CustomerID: customerID,
		PlatformID: platformID,
		Type:       entity.SubscriptionTypeSubscription,
		StartDate:  now.AddDate(0, 0, -startedDaysAgo),
		ExpiryDate: now.AddDate(0, 0, expiresInDays),
		Cost:       cost,
		Status:     status,
		CreatedAt:  now.AddDate(0, 0, -startedDaysAgo),
		Platform:   &entity.Platform{ID: platformID, Name: platformName},
	}
}

func TestDashboardService_GetStats_BasicAggregation(t *testing.T) {
	svc, subscriptionRepo := newDashboardService(t)
	ctx := context.Background()

	customerA := uuid.New()
	customerB := uuid.New()
	netflix := uuid.New()
	spotify := uuid.New()

	subs := []*entity.Subscription{
		// Active, expiring within the upcoming window.
		buildSubscription(customerA, netflix, "Netflix", 10, 3, 15.99, entity.SubscriptionStatusActive),
		// Active, expiring far out.
		buildSubscription(customerA, spotify, "Spotify", 5, 60, 9.99, entity.SubscriptionStatusActive),
		// Expired subscription still counts toward revenue and customers.
		buildSubscription(customerB, netflix, "Netflix", 20, -5, 12.00, entity.SubscriptionStatusExpired),
	}

	subscriptionRepo.EXPECT().ListSubscriptionsWithDetails(ctx).Return(subs, nil)

	summary, err := svc.GetStats(ctx, entity.TimeFrame30Days)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Stats.TotalCustomers)
	assert.Equal(t, 2, summary.Stats.ActiveSubscriptions)
	assert.Equal(t, 1, summary.Stats.UpcomingExpiries)
	assert.InDelta(t, 37.98, summary.Stats.TotalRevenue, 0.001)
}

func TestDashboardService_GetStats_TimeFrameFiltersByStartDate(t *testing.T) {
	svc, subscriptionRepo := newDashboardService(t)
	ctx := context.Background()

	customerID := uuid.New()
	platformID := uuid.New()

	subs := []*entity.Subscription{
		// Inside a 7-day window.
		buildSubscription(customerID, platformID, "Netflix", 2, 30, 10.00, entity.SubscriptionStatusActive),
		// Outside the 7-day window but inside 90 days.
		buildSubscription(customerID, platformID, "Netflix", 40, 30, 99.00, entity.SubscriptionStatusActive),
	}

	subscriptionRepo.EXPECT().ListSubscriptionsWithDetails(ctx).Return(subs, nil).Twice()

	weekly, err := svc.GetStats(ctx, entity.TimeFrame7Days)
	require.NoError(t, err)
	assert.InDelta(t, 10.00, weekly.Stats.TotalRevenue, 0.001)
	assert.Equal(t, 1, weekly.Stats.ActiveSubscriptions)

	quarterly, err := svc.GetStats(ctx, entity.TimeFrame90Days)
	require.NoError(t, err)
	assert.InDelta(t, 109.00, quarterly.Stats.TotalRevenue, 0.001)
	assert.Equal(t, 2, quarterly.Stats.ActiveSubscriptions)
}

func TestDashboardService_GetStats_TopPlatformsSortedAndCapped(t *testing.T) {
	svc, subscriptionRepo := newDashboardService(t)
	ctx := context.Background()

	customerID := uuid.New()
	subs := make([]*entity.Subscription, 0, 7)
	for i := 0; i < 7; i++ {
		platformID := uuid.New()
		subs = append(subs, buildSubscription(
			customerID, platformID, fmt.Sprintf("Platform %d", i), 1, 30,
			float64(i+1), entity.SubscriptionStatusActive,
		))
	}

	subscriptionRepo.EXPECT().ListSubscriptionsWithDetails(ctx).Return(subs, nil)

	summary, err := svc.GetStats(ctx, entity.TimeFrameAll)
	require.NoError(t, err)

	require.Len(t, summary.TopPlatforms, 5)
	assert.Equal(t, "Platform 6", summary.TopPlatforms[0].PlatformName)
	assert.InDelta(t, 7.0, summary.TopPlatforms[0].Revenue, 0.001)
	for i := 1; i < len(summary.TopPlatforms); i++ {
		assert.GreaterOrEqual(t,
			summary.TopPlatforms[i-1].Revenue,
			summary.TopPlatforms[i].Revenue,
		)
	}
}

func TestDashboardService_GetStats_ExpiryChartBucketsByDay(t *testing.T) {
	svc, subscriptionRepo := newDashboardService(t)
	ctx := context.Background()

	customerID := uuid.New()
	platformID := uuid.New()

	subs := []*entity.Subscription{
		// Two expiring on the same day inside the chart window.
		buildSubscription(customerID, platformID, "Netflix", 1, 5, 1, entity.SubscriptionStatusActive),
		buildSubscription(customerID, platformID, "Netflix", 1, 5, 1, entity.SubscriptionStatusActive),
		// One on another day.
		buildSubscription(customerID, platformID, "Netflix", 1, 12, 1, entity.SubscriptionStatusActive),
		// Outside the 30-day chart window.
		buildSubscription(customerID, platformID, "Netflix", 1, 45, 1, entity.SubscriptionStatusActive),
		// Cancelled subscriptions never chart.
		buildSubscription(customerID, platformID, "Netflix", 1, 5, 1, entity.SubscriptionStatusCancelled),
	}

	subscriptionRepo.EXPECT().ListSubscriptionsWithDetails(ctx).Return(subs, nil)

	summary, err := svc.GetStats(ctx, entity.TimeFrameAll)
	require.NoError(t, err)

	require.Len(t, summary.ExpiryChart, 2)
	firstDay := time.Now().AddDate(0, 0, 5)
	assert.Equal(t, firstDay.Format("Jan 2"), summary.ExpiryChart[0].Label)
	assert.Equal(t, 2, summary.ExpiryChart[0].Count)
	assert.Equal(t, 1, summary.ExpiryChart[1].Count)
}

func TestDashboardService_GetStats_RecentSubscriptionsCapped(t *testing.T) {
	svc, subscriptionRepo := newDashboardService(t)
	ctx := context.Background()

	customerID := uuid.New()
	platformID := uuid.New()

	subs := make([]*entity.Subscription, 0, 8)
	for i := 0; i < 8; i++ {
		subs = append(subs, buildSubscription(
			customerID, platformID, "Netflix", i, 30, 1, entity.SubscriptionStatusActive,
		))
	}

	subscriptionRepo.EXPECT().ListSubscriptionsWithDetails(ctx).Return(subs, nil)

	summary, err := svc.GetStats(ctx, entity.TimeFrameAll)
	require.NoError(t, err)

	require.Len(t, summary.RecentSubscriptions, 5)
	for i := 1; i < len(summary.RecentSubscriptions); i++ {
		assert.True(t, summary.RecentSubscriptions[i-1].CreatedAt.After(
			summary.RecentSubscriptions[i].CreatedAt,
		))
	}
}

func TestDashboardService_GetStats_UnknownTimeFrame(t *testing.T) {
	svc, _ := newDashboardService(t)
	ctx := context.Background()

	summary, err := svc.GetStats(ctx, entity.TimeFrame("fortnight"))
	assert.Error(t, err)
	assert.Nil(t, summary)
}
