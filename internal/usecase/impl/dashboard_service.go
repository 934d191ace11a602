package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"subhub/config"
	"subhub/internal/domain/entity"
	domainerrors "subhub/internal/domain/errors"
	"subhub/internal/domain/repository"
	"subhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dashboardService struct {
	subscriptionRepo repository.SubscriptionRepository
	config           *config.Config
	logger           *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		subscriptionRepo: params.SubscriptionRepo,
		config:           params.Config,
		logger:           params.Logger,
	}
}

// GetStats computes the dashboard summary over subscriptions whose start date
// falls inside the requested time frame.
func (s *dashboardService) GetStats(ctx context.Context, timeFrame entity.TimeFrame) (*usecase.DashboardSummary, error) {
	if !timeFrame.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown time frame")
	}

	subscriptions, err := s.subscriptionRepo.ListSubscriptionsWithDetails(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load subscriptions for dashboard")
	}

	now := time.Now()
	filtered := filterByTimeFrame(subscriptions, timeFrame, now)

	summary := &usecase.DashboardSummary{
		Stats:               s.computeStats(filtered, now),
		TopPlatforms:        s.computeTopPlatforms(filtered),
		ExpiryChart:         s.computeExpiryChart(filtered, now),
		RecentSubscriptions: s.computeRecent(filtered),
	}

	return summary, nil
}

// filterByTimeFrame keeps subscriptions started inside the window. The "all"
// frame keeps everything.
func filterByTimeFrame(subscriptions []*entity.Subscription, timeFrame entity.TimeFrame, now time.Time) []*entity.Subscription {
	days, bounded := timeFrame.Days()
	if !bounded {
		return subscriptions
	}

	cutoff := now.AddDate(0, 0, -days)
	filtered := make([]*entity.Subscription, 0, len(subscriptions))
	for _, sub := range subscriptions {
		if !sub.StartDate.Before(cutoff) {
			filtered = append(filtered, sub)
		}
	}

	return filtered
}

func (s *dashboardService) computeStats(subscriptions []*entity.Subscription, now time.Time) entity.DashboardStats {
	upcomingWindow := now.AddDate(0, 0, s.config.Dashboard.UpcomingExpiryDays)

	stats := entity.DashboardStats{}
	customers := make(map[string]struct{})
	for _, sub := range subscriptions {
		customers[sub.CustomerID.String()] = struct{}{}
		stats.TotalRevenue += sub.Cost

		if sub.Status != entity.SubscriptionStatusActive {
			continue
		}
		stats.ActiveSubscriptions++

		if sub.ExpiryDate.After(now) && !sub.ExpiryDate.After(upcomingWindow) {
			stats.UpcomingExpiries++
		}
	}
	stats.TotalCustomers = len(customers)

	return stats
}

func (s *dashboardService) computeTopPlatforms(subscriptions []*entity.Subscription) []entity.PlatformRevenue {
	byPlatform := make(map[string]*entity.PlatformRevenue)
	for _, sub := range subscriptions {
		key := sub.PlatformID.String()
		revenue, ok := byPlatform[key]
		if !ok {
			name := ""
			if sub.Platform != nil {
				name = sub.Platform.Name
			}
			revenue = &entity.PlatformRevenue{
				PlatformID:   key,
				PlatformName: name,
			}
			byPlatform[key] = revenue
		}
		revenue.Count++
		revenue.Revenue += sub.Cost
	}

	top := make([]entity.PlatformRevenue, 0, len(byPlatform))
	for _, revenue := range byPlatform {
		top = append(top, *revenue)
	}

	sort.Slice(top, func(i, j int) bool {
		if top[i].Revenue != top[j].Revenue {
			return top[i].Revenue > top[j].Revenue
		}

		return top[i].PlatformName < top[j].PlatformName
	})

	if limit := s.config.Dashboard.TopPlatformsLimit; len(top) > limit {
		top = top[:limit]
	}

	return top
}

// computeExpiryChart buckets active subscriptions expiring within the chart
// window by calendar day. Days without expiries are omitted.
func (s *dashboardService) computeExpiryChart(subscriptions []*entity.Subscription, now time.Time) []entity.ExpiryBucket {
	windowEnd := now.AddDate(0, 0, s.config.Dashboard.ExpiryChartDays)

	counts := make(map[time.Time]int)
	for _, sub := range subscriptions {
		if sub.Status != entity.SubscriptionStatusActive {
			continue
		}
		if sub.ExpiryDate.Before(now) || sub.ExpiryDate.After(windowEnd) {
			continue
		}
		day := time.Date(sub.ExpiryDate.Year(), sub.ExpiryDate.Month(), sub.ExpiryDate.Day(), 0, 0, 0, 0, sub.ExpiryDate.Location())
		counts[day]++
	}

	days := make([]time.Time, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	chart := make([]entity.ExpiryBucket, 0, len(days))
	for _, day := range days {
		chart = append(chart, entity.ExpiryBucket{
			Label: day.Format("Jan 2"),
			Count: counts[day],
		})
	}

	return chart
}

func (s *dashboardService) computeRecent(subscriptions []*entity.Subscription) []*usecase.SubscriptionView {
	recent := make([]*entity.Subscription, len(subscriptions))
	copy(recent, subscriptions)

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	if limit := s.config.Dashboard.RecentLimit; len(recent) > limit {
		recent = recent[:limit]
	}

	return toViews(recent)
}
