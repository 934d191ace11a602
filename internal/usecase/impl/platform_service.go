package impl

import (
	"context"
	"log/slog"
	"strings"

	"subhub/internal/domain/entity"
	domainerrors "subhub/internal/domain/errors"
	"subhub/internal/domain/repository"
	"subhub/internal/domain/service"
	"subhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type platformService struct {
	platformRepo repository.PlatformRepository
	txManager    repository.TransactionManager
	cache        service.CollectionCache
	logger       *slog.Logger
}

// PlatformServiceParams holds dependencies for PlatformService, injected by Fx.
type PlatformServiceParams struct {
	fx.In

	PlatformRepo repository.PlatformRepository
	TxManager    repository.TransactionManager
	Cache        service.CollectionCache
	Logger       *slog.Logger
}

// NewPlatformService creates a new platform service instance
func NewPlatformService(params PlatformServiceParams) usecase.PlatformUsecase {
	return &platformService{
		platformRepo: params.PlatformRepo,
		txManager:    params.TxManager,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

// ListPlatforms returns platforms ordered by name, filtered by the search term.
func (s *platformService) ListPlatforms(ctx context.Context, search string) ([]*entity.Platform, error) {
	platforms, err := s.loadPlatforms(ctx)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return platforms, nil
	}

	needle := strings.ToLower(search)
	filtered := make([]*entity.Platform, 0, len(platforms))
	for _, platform := range platforms {
		if strings.Contains(strings.ToLower(platform.Name), needle) ||
			strings.Contains(strings.ToLower(platform.Description), needle) {
			filtered = append(filtered, platform)
		}
	}

	return filtered, nil
}

func (s *platformService) loadPlatforms(ctx context.Context) ([]*entity.Platform, error) {
	var cached []*entity.Platform
	if hit, err := s.cache.Get(ctx, service.CacheKeyPlatforms, &cached); err == nil && hit {
		return cached, nil
	}

	platforms, err := s.platformRepo.ListPlatforms(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list platforms")
	}

	if err := s.cache.Set(ctx, service.CacheKeyPlatforms, platforms); err != nil {
		s.logger.WarnContext(ctx, "failed to cache platforms", slog.Any("error", err))
	}

	return platforms, nil
}

// GetPlatform returns a single platform.
func (s *platformService) GetPlatform(ctx context.Context, id uuid.UUID) (*entity.Platform, error) {
	platform, err := s.platformRepo.FindPlatformByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlatformNotFound) {
			return nil, domainerrors.ErrPlatformNotFound
		}

		return nil, errors.Wrap(err, "failed to find platform")
	}

	return platform, nil
}

// CreatePlatform stores a new platform record.
func (s *platformService) CreatePlatform(ctx context.Context, input usecase.PlatformInput) (*entity.Platform, error) {
	platform := &entity.Platform{
		Name:        input.Name,
		Description: input.Description,
		LogoURL:     input.LogoURL,
	}

	if err := s.platformRepo.CreatePlatform(ctx, platform); err != nil {
		if errors.Is(err, repository.ErrDuplicatePlatform) {
			return nil, domainerrors.ErrPlatformAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create platform")
	}

	s.invalidate(ctx, service.CacheKeyPlatforms)

	return platform, nil
}

// UpdatePlatform replaces the editable fields of a platform.
func (s *platformService) UpdatePlatform(ctx context.Context, id uuid.UUID, input usecase.PlatformInput) (*entity.Platform, error) {
	platform := &entity.Platform{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		LogoURL:     input.LogoURL,
	}

	if err := s.platformRepo.UpdatePlatform(ctx, platform); err != nil {
		switch {
		case errors.Is(err, repository.ErrPlatformNotFound):
			return nil, domainerrors.ErrPlatformNotFound
		case errors.Is(err, repository.ErrDuplicatePlatform):
			return nil, domainerrors.ErrPlatformAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to update platform")
	}

	updated, err := s.platformRepo.FindPlatformByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload platform after update")
	}

	s.invalidate(ctx, service.CacheKeyPlatforms)

	return updated, nil
}

// DeletePlatform removes a platform and all of its subscriptions in one transaction.
func (s *platformService) DeletePlatform(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.PlatformRepo().FindPlatformByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrPlatformNotFound) {
				return domainerrors.ErrPlatformNotFound
			}

			return errors.Wrap(err, "failed to find platform before delete")
		}

		if err := factory.SubscriptionRepo().DeleteSubscriptionsByPlatform(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete platform subscriptions")
		}

		if err := factory.PlatformRepo().DeletePlatform(ctx, id); err != nil {
			if errors.Is(err, repository.ErrPlatformNotFound) {
				return domainerrors.ErrPlatformNotFound
			}

			return errors.Wrap(err, "failed to delete platform")
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, service.CacheKeyPlatforms, service.CacheKeySubscriptions)

	return nil
}

func (s *platformService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.WarnContext(ctx, "cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}
