package postgres

import (
	"context"

	"subhub/internal/domain/entity"
	domainerrors "subhub/internal/domain/errors"
	"subhub/internal/domain/repository"
	"subhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// platformRepository implements the repository.PlatformRepository interface.
type platformRepository struct {
	db *gorm.DB
}

// NewPlatformRepository is the constructor for platformRepository.
func NewPlatformRepository(db *gorm.DB) repository.PlatformRepository {
	return &platformRepository{
		db: db,
	}
}

// ListPlatforms retrieves all platforms ordered by name.
func (repo *platformRepository) ListPlatforms(ctx context.Context) ([]*entity.Platform, error) {
	var platformModels []*model.PlatformModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&platformModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list platforms")
	}

	platforms := make([]*entity.Platform, 0, len(platformModels))
	for _, platformM := range platformModels {
		platforms = append(platforms, toPlatformDomain(platformM))
	}

	return platforms, nil
}

// FindPlatformByID retrieves a platform by its unique ID.
func (repo *platformRepository) FindPlatformByID(ctx context.Context, id uuid.UUID) (*entity.Platform, error) {
	var platformM model.PlatformModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&platformM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlatformNotFound
		}

		return nil, errors.Wrap(err, "failed to find platform by ID")
	}

	return toPlatformDomain(&platformM), nil
}

// CreatePlatform persists a new platform.
func (repo *platformRepository) CreatePlatform(ctx context.Context, platform *entity.Platform) error {
	platformM := fromPlatformDomain(platform)

	if err := repo.db.WithContext(ctx).Create(platformM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePlatform
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required platform information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create platform")
	}

	platform.ID = platformM.ID
	platform.CreatedAt = platformM.CreatedAt
	platform.UpdatedAt = platformM.UpdatedAt

	return nil
}

// UpdatePlatform modifies an existing platform.
func (repo *platformRepository) UpdatePlatform(ctx context.Context, platform *entity.Platform) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlatformModel{}).
		Where("id = ?", platform.ID).
		Updates(map[string]any{
			"name":        platform.Name,
			"description": platform.Description,
			"logo_url":    platform.LogoURL,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicatePlatform
		}

		return errors.Wrap(result.Error, "failed to update platform")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlatformNotFound
	}

	return nil
}

// DeletePlatform removes a platform by its ID.
func (repo *platformRepository) DeletePlatform(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlatformModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete platform")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlatformNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPlatformDomain converts a GORM PlatformModel to a domain Platform entity.
func toPlatformDomain(data *model.PlatformModel) *entity.Platform {
	if data == nil {
		return nil
	}

	return &entity.Platform{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPlatformDomain converts a domain Platform entity to a GORM PlatformModel.
func fromPlatformDomain(data *entity.Platform) *model.PlatformModel {
	if data == nil {
		return nil
	}

	return &model.PlatformModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
