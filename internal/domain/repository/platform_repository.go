package repository

import (
	"context"

	"subhub/internal/domain/entity"
	"subhub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for platform persistence.
var (
	// ErrPlatformNotFound is returned when a platform is not found.
	ErrPlatformNotFound = errors.New("platform not found")
	// ErrDuplicatePlatform is returned when a platform with the same name already exists.
	ErrDuplicatePlatform = errors.New("platform already exists")
)

// PlatformRepository defines the interface for platform-related database operations.
type PlatformRepository interface {
	// ListPlatforms retrieves all platforms ordered by name.
	ListPlatforms(ctx context.Context) ([]*entity.Platform, error)

	// FindPlatformByID retrieves a platform by its unique ID.
	FindPlatformByID(ctx context.Context, id uuid.UUID) (*entity.Platform, error)

	// CreatePlatform persists a new platform and fills in generated fields.
	CreatePlatform(ctx context.Context, platform *entity.Platform) error

	// UpdatePlatform modifies an existing platform.
	UpdatePlatform(ctx context.Context, platform *entity.Platform) error

	// DeletePlatform removes a platform by its ID.
	DeletePlatform(ctx context.Context, id uuid.UUID) error
}
