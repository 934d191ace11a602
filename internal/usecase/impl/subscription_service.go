package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"subhub/internal/domain/entity"
	domainerrors "subhub/internal/domain/errors"
	"subhub/internal/domain/repository"
	"subhub/internal/domain/service"
	"subhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	cache            service.CollectionCache
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Cache            service.CollectionCache
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		cache:            params.Cache,
		logger:           params.Logger,
	}
}

// ListSubscriptions returns subscriptions ordered by expiry date.
func (s *subscriptionService) ListSubscriptions(ctx context.Context, search string, embedDetails bool) ([]*usecase.SubscriptionView, error) {
	var (
		subscriptions []*entity.Subscription
		err           error
	)

	if embedDetails {
		subscriptions, err = s.subscriptionRepo.ListSubscriptionsWithDetails(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list subscriptions with details")
		}
	} else {
		subscriptions, err = s.loadSubscriptions(ctx)
		if err != nil {
			return nil, err
		}
	}

	if search != "" {
		subscriptions = filterSubscriptions(subscriptions, search)
	}

	return toViews(subscriptions), nil
}

// loadSubscriptions reads the plain collection through the cache. Detailed
// listings always hit the database since embedded rows change independently.
func (s *subscriptionService) loadSubscriptions(ctx context.Context) ([]*entity.Subscription, error) {
	var cached []*entity.Subscription
	if hit, err := s.cache.Get(ctx, service.CacheKeySubscriptions, &cached); err == nil && hit {
		return cached, nil
	}

	subscriptions, err := s.subscriptionRepo.ListSubscriptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	if err := s.cache.Set(ctx, service.CacheKeySubscriptions, subscriptions); err != nil {
		s.logger.WarnContext(ctx, "failed to cache subscriptions", slog.Any("error", err))
	}

	return subscriptions, nil
}

// GetSubscription returns a single subscription.
func (s *subscriptionService) GetSubscription(ctx context.Context, id uuid.UUID) (*usecase.SubscriptionView, error) {
	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return toView(subscription), nil
}

// CreateSubscription stores a new subscription record.
func (s *subscriptionService) CreateSubscription(ctx context.Context, input usecase.SubscriptionInput) (*usecase.SubscriptionView, error) {
	if !input.ExpiryDate.After(input.StartDate) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("expiry date must be after start date")
	}

	subscription := &entity.Subscription{
		CustomerID: input.CustomerID,
		PlatformID: input.PlatformID,
		Type:       input.Type,
		StartDate:  input.StartDate,
		ExpiryDate: input.ExpiryDate,
		Cost:       input.Cost,
		Status:     input.Status,
		Notes:      input.Notes,
	}

	if err := s.subscriptionRepo.CreateSubscription(ctx, subscription); err != nil {
		if errors.Is(err, domainerrors.ErrInvalidReference) {
			return nil, domainerrors.ErrInvalidReference
		}

		return nil, errors.Wrap(err, "failed to create subscription")
	}

	s.invalidate(ctx, service.CacheKeySubscriptions)

	return toView(subscription), nil
}

// UpdateSubscription replaces the editable fields of a subscription.
func (s *subscriptionService) UpdateSubscription(ctx context.Context, id uuid.UUID, input usecase.SubscriptionInput) (*usecase.SubscriptionView, error) {
	if !input.ExpiryDate.After(input.StartDate) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("expiry date must be after start date")
	}

	subscription := &entity.Subscription{
		ID:         id,
		CustomerID: input.CustomerID,
		PlatformID: input.PlatformID,
		Type:       input.Type,
		StartDate:  input.StartDate,
		ExpiryDate: input.ExpiryDate,
		Cost:       input.Cost,
		Status:     input.Status,
		Notes:      input.Notes,
	}

	if err := s.subscriptionRepo.UpdateSubscription(ctx, subscription); err != nil {
		switch {
		case errors.Is(err, repository.ErrSubscriptionNotFound):
			return nil, domainerrors.ErrSubscriptionNotFound
		case errors.Is(err, domainerrors.ErrInvalidReference):
			return nil, domainerrors.ErrInvalidReference
		}

		return nil, errors.Wrap(err, "failed to update subscription")
	}

	updated, err := s.subscriptionRepo.FindSubscriptionByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload subscription after update")
	}

	s.invalidate(ctx, service.CacheKeySubscriptions)

	return toView(updated), nil
}

// DeleteSubscription removes a single subscription.
func (s *subscriptionService) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	if err := s.subscriptionRepo.DeleteSubscription(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to delete subscription")
	}

	s.invalidate(ctx, service.CacheKeySubscriptions)

	return nil
}

func (s *subscriptionService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.WarnContext(ctx, "cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}

// filterSubscriptions keeps records whose embedded customer name, platform
// name or notes contain the search term, case-insensitively.
func filterSubscriptions(subscriptions []*entity.Subscription, search string) []*entity.Subscription {
	needle := strings.ToLower(search)
	filtered := make([]*entity.Subscription, 0, len(subscriptions))
	for _, sub := range subscriptions {
		if strings.Contains(strings.ToLower(sub.Notes), needle) {
			filtered = append(filtered, sub)

			continue
		}
		if sub.Customer != nil && strings.Contains(strings.ToLower(sub.Customer.Name), needle) {
			filtered = append(filtered, sub)

			continue
		}
		if sub.Platform != nil && strings.Contains(strings.ToLower(sub.Platform.Name), needle) {
			filtered = append(filtered, sub)
		}
	}

	return filtered
}

// daysUntilExpiry counts whole days from now to the expiry date, rounding up
// so a subscription expiring later today still reports one day left.
func daysUntilExpiry(expiry time.Time, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

func toView(subscription *entity.Subscription) *usecase.SubscriptionView {
	if subscription == nil {
		return nil
	}

	return &usecase.SubscriptionView{
		Subscription:    *subscription,
		DaysUntilExpiry: daysUntilExpiry(subscription.ExpiryDate, time.Now()),
	}
}

func toViews(subscriptions []*entity.Subscription) []*usecase.SubscriptionView {
	views := make([]*usecase.SubscriptionView, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		views = append(views, toView(subscription))
	}

	return views
}
