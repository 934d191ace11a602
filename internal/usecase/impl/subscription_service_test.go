package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"subhub/internal/domain/entity"
	domainerrors "subhub/internal/domain/errors"
	"subhub/internal/domain/repository"
	"subhub/internal/domain/service"
	mockRepo "subhub/internal/mocks/repository"
	mockSvc "subhub/internal/mocks/service"
	"subhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubscriptionService(t *testing.T) (usecase.SubscriptionUsecase, *mockRepo.MockSubscriptionRepository, *mockSvc.MockCollectionCache) {
	t.Helper()

	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	cache := mockSvc.NewMockCollectionCache(t)

	svc := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: subscriptionRepo,
		Cache:            cache,
		Logger:           slog.Default(),
	})

	return svc, subscriptionRepo, cache
}

func validSubscriptionInput() usecase.SubscriptionInput {
	now := time.Now()

	return usecase.SubscriptionInput{
		CustomerID: uuid.New(),
		PlatformID: uuid.New(),
		Type:       entity.SubscriptionTypeSubscription,
		StartDate:  now,
		ExpiryDate: now.AddDate(0, 1, 0),
		Cost:       9.99,
		Status:     entity.SubscriptionStatusActive,
	}
}

func TestSubscriptionService_ListSubscriptions_PlainCollection(t *testing.T) {
	svc, subscriptionRepo, cache := newSubscriptionService(t)
	ctx := context.Background()

	sub := &entity.Subscription{
		ID:         uuid.New(),
		ExpiryDate: time.Now().AddDate(0, 0, 10),
		Status:     entity.SubscriptionStatusActive,
	}

	cache.EXPECT().Get(ctx, service.CacheKeySubscriptions, mock.Anything).Return(false, nil)
	subscriptionRepo.EXPECT().ListSubscriptions(ctx).Return([]*entity.Subscription{sub}, nil)
	cache.EXPECT().Set(ctx, service.CacheKeySubscriptions, mock.Anything).Return(nil)

	views, err := svc.ListSubscriptions(ctx, "", false)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, sub.ID, views[0].ID)
	// Expiring in ten days: the derived counter reports ten days left.
	assert.Equal(t, 10, views[0].DaysUntilExpiry)
}

func TestSubscriptionService_ListSubscriptions_WithDetailsSkipsCache(t *testing.T) {
	svc, subscriptionRepo, _ := newSubscriptionService(t)
	ctx := context.Background()

	sub := &entity.Subscription{
		ID:         uuid.New(),
		ExpiryDate: time.Now().AddDate(0, 1, 0),
		Customer:   &entity.Customer{Name: "Alice"},
		Platform:   &entity.Platform{Name: "Netflix"},
	}

	subscriptionRepo.EXPECT().ListSubscriptionsWithDetails(ctx).Return([]*entity.Subscription{sub}, nil)

	views, err := svc.ListSubscriptions(ctx, "", true)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Customer)
	assert.Equal(t, "Alice", views[0].Customer.Name)
}

func TestSubscriptionService_ListSubscriptions_SearchMatchesEmbeddedNames(t *testing.T) {
	svc, subscriptionRepo, _ := newSubscriptionService(t)
	ctx := context.Background()

	matching := &entity.Subscription{
		ID:         uuid.New(),
		ExpiryDate: time.Now().AddDate(0, 1, 0),
		Customer:   &entity.Customer{Name: "Alice"},
		Platform:   &entity.Platform{Name: "Netflix"},
	}
	other := &entity.Subscription{
		ID:         uuid.New(),
		ExpiryDate: time.Now().AddDate(0, 2, 0),
		Customer:   &entity.Customer{Name: "Bob"},
		Platform:   &entity.Platform{Name: "Spotify"},
	}

	subscriptionRepo.EXPECT().
		ListSubscriptionsWithDetails(ctx).
		Return([]*entity.Subscription{matching, other}, nil)

	views, err := svc.ListSubscriptions(ctx, "netflix", true)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, matching.ID, views[0].ID)
}

func TestSubscriptionService_CreateSubscription(t *testing.T) {
	svc, subscriptionRepo, cache := newSubscriptionService(t)
	ctx := context.Background()
	input := validSubscriptionInput()

	subscriptionRepo.EXPECT().
		CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).
		Run(func(_ context.Context, subscription *entity.Subscription) {
			subscription.ID = uuid.New()
		}).
		Return(nil)
	cache.EXPECT().Invalidate(ctx, service.CacheKeySubscriptions).Return(nil)

	view, err := svc.CreateSubscription(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, view.ID)
	assert.Equal(t, input.CustomerID, view.CustomerID)
	assert.Equal(t, input.Cost, view.Cost)
}

func TestSubscriptionService_CreateSubscription_ExpiryBeforeStart(t *testing.T) {
	svc, _, _ := newSubscriptionService(t)
	ctx := context.Background()

	input := validSubscriptionInput()
	input.ExpiryDate = input.StartDate.AddDate(0, 0, -1)

	// The repository must not be touched when the dates are inverted.
	view, err := svc.CreateSubscription(ctx, input)
	assert.Error(t, err)
	assert.Nil(t, view)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestSubscriptionService_CreateSubscription_InvalidReference(t *testing.T) {
	svc, subscriptionRepo, _ := newSubscriptionService(t)
	ctx := context.Background()
	input := validSubscriptionInput()

	subscriptionRepo.EXPECT().
		CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(domainerrors.ErrInvalidReference)

	view, err := svc.CreateSubscription(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
	assert.Nil(t, view)
}

func TestSubscriptionService_UpdateSubscription_NotFound(t *testing.T) {
	svc, subscriptionRepo, _ := newSubscriptionService(t)
	ctx := context.Background()
	id := uuid.New()
	input := validSubscriptionInput()

	subscriptionRepo.EXPECT().
		UpdateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(repository.ErrSubscriptionNotFound)

	view, err := svc.UpdateSubscription(ctx, id, input)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
	assert.Nil(t, view)
}

func TestSubscriptionService_DeleteSubscription(t *testing.T) {
	svc, subscriptionRepo, cache := newSubscriptionService(t)
	ctx := context.Background()
	id := uuid.New()

	subscriptionRepo.EXPECT().DeleteSubscription(ctx, id).Return(nil)
	cache.EXPECT().Invalidate(ctx, service.CacheKeySubscriptions).Return(nil)

	require.NoError(t, svc.DeleteSubscription(ctx, id))
}

func TestSubscriptionService_DeleteSubscription_NotFound(t *testing.T) {
	svc, subscriptionRepo, _ := newSubscriptionService(t)
	ctx := context.Background()
	id := uuid.New()

	subscriptionRepo.EXPECT().DeleteSubscription(ctx, id).Return(repository.ErrSubscriptionNotFound)

	err := svc.DeleteSubscription(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestDaysUntilExpiry(t *testing.T) {
	now := time.Now()

	assert.Equal(t, 7, daysUntilExpiry(now.Add(7*24*time.Hour), now))
	assert.Equal(t, 1, daysUntilExpiry(now.Add(2*time.Hour), now))
	assert.Equal(t, 0, daysUntilExpiry(now, now))
	assert.Equal(t, -2, daysUntilExpiry(now.Add(-2*24*time.Hour), now))
}
