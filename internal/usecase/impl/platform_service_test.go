package impl

import (
	"context"
	"log/slog"
	"testing"

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

func newPlatformService(t *testing.T) (usecase.PlatformUsecase, *mockRepo.MockPlatformRepository, *mockRepo.MockTransactionManager, *mockSvc.MockCollectionCache) {
	t.Helper()

	platformRepo := mockRepo.NewMockPlatformRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	cache := mockSvc.NewMockCollectionCache(t)

	svc := NewPlatformService(PlatformServiceParams{
		PlatformRepo: platformRepo,
		TxManager:    txManager,
		Cache:        cache,
		Logger:       slog.Default(),
	})

	return svc, platformRepo, txManager, cache
}

func TestPlatformService_ListPlatforms_UsesCacheOnHit(t *testing.T) {
	svc, _, _, cache := newPlatformService(t)
	ctx := context.Background()

	cached := []*entity.Platform{{ID: uuid.New(), Name: "Netflix"}}
	cache.EXPECT().
		Get(ctx, service.CacheKeyPlatforms, mock.Anything).
		Run(func(_ context.Context, _ string, dest any) {
			ptr := dest.(*[]*entity.Platform)
			*ptr = cached
		}).
		Return(true, nil)

	platforms, err := svc.ListPlatforms(ctx, "")
	require.NoError(t, err)
	require.Len(t, platforms, 1)
	assert.Equal(t, "Netflix", platforms[0].Name)
}

func TestPlatformService_ListPlatforms_SearchFiltersByName(t *testing.T) {
	svc, platformRepo, _, cache := newPlatformService(t)
	ctx := context.Background()

	netflix := &entity.Platform{ID: uuid.New(), Name: "Netflix"}
	spotify := &entity.Platform{ID: uuid.New(), Name: "Spotify"}

	cache.EXPECT().Get(ctx, service.CacheKeyPlatforms, mock.Anything).Return(false, nil)
	platformRepo.EXPECT().ListPlatforms(ctx).Return([]*entity.Platform{netflix, spotify}, nil)
	cache.EXPECT().Set(ctx, service.CacheKeyPlatforms, mock.Anything).Return(nil)

	platforms, err := svc.ListPlatforms(ctx, "net")
	require.NoError(t, err)
	require.Len(t, platforms, 1)
	assert.Equal(t, "Netflix", platforms[0].Name)
}

func TestPlatformService_CreatePlatform_Duplicate(t *testing.T) {
	svc, platformRepo, _, _ := newPlatformService(t)
	ctx := context.Background()

	platformRepo.EXPECT().
		CreatePlatform(ctx, mock.AnythingOfType("*entity.Platform")).
		Return(repository.ErrDuplicatePlatform)

	platform, err := svc.CreatePlatform(ctx, usecase.PlatformInput{Name: "Netflix"})
	assert.ErrorIs(t, err, domainerrors.ErrPlatformAlreadyExists)
	assert.Nil(t, platform)
}

func TestPlatformService_DeletePlatform_CascadesInOneTransaction(t *testing.T) {
	svc, _, txManager, cache := newPlatformService(t)
	ctx := context.Background()
	id := uuid.New()

	txPlatformRepo := mockRepo.NewMockPlatformRepository(t)
	txSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PlatformRepo().Return(txPlatformRepo)
	factory.EXPECT().SubscriptionRepo().Return(txSubscriptionRepo)

	txPlatformRepo.EXPECT().FindPlatformByID(ctx, id).Return(&entity.Platform{ID: id}, nil)
	txSubscriptionRepo.EXPECT().DeleteSubscriptionsByPlatform(ctx, id).Return(nil)
	txPlatformRepo.EXPECT().DeletePlatform(ctx, id).Return(nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	cache.EXPECT().Invalidate(ctx, service.CacheKeyPlatforms, service.CacheKeySubscriptions).Return(nil)

	err := svc.DeletePlatform(ctx, id)
	require.NoError(t, err)
}

func TestPlatformService_DeletePlatform_NotFound(t *testing.T) {
	svc, _, txManager, _ := newPlatformService(t)
	ctx := context.Background()
	id := uuid.New()

	txPlatformRepo := mockRepo.NewMockPlatformRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PlatformRepo().Return(txPlatformRepo)

	txPlatformRepo.EXPECT().FindPlatformByID(ctx, id).Return(nil, repository.ErrPlatformNotFound)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := svc.DeletePlatform(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrPlatformNotFound)
}
