package usecase

import (
	"context"

	"subhub/internal/domain/entity"

	"github.com/google/uuid"
)

// PlatformInput defines the data accepted when creating or updating a platform.
type PlatformInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	LogoURL     string `json:"logoUrl" validate:"omitempty,url,max=512"`
}

// PlatformUsecase defines the interface for platform-related business operations.
type PlatformUsecase interface {
	// ListPlatforms returns platforms ordered by name. A non-empty search term
	// filters by case-insensitive substring match on name and description.
	ListPlatforms(ctx context.Context, search string) ([]*entity.Platform, error)

	// GetPlatform returns a single platform.
	GetPlatform(ctx context.Context, id uuid.UUID) (*entity.Platform, error)

	// CreatePlatform stores a new platform record.
	CreatePlatform(ctx context.Context, input PlatformInput) (*entity.Platform, error)

	// UpdatePlatform replaces the editable fields of a platform.
	UpdatePlatform(ctx context.Context, id uuid.UUID, input PlatformInput) (*entity.Platform, error)

	// DeletePlatform removes a platform together with all of its
	// subscriptions in one transaction.
	DeletePlatform(ctx context.Context, id uuid.UUID) error
}
