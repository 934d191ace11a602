package usecase

import (
	"context"

	"subhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register an admin account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries the refresh token being rotated.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutInput carries the refresh token being revoked.
type LogoutInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UpdateThemeInput carries the new theme preference.
type UpdateThemeInput struct {
	Theme entity.ThemePreference `json:"theme" validate:"required,oneof=light dark system"`
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful login or refresh.
type AuthOutput struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *entity.User `json:"user"`
}

// UserUsecase defines the interface for admin account operations.
type UserUsecase interface {
	// Register creates an admin account and logs it in.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// RefreshToken rotates a refresh token into a new token pair.
	RefreshToken(ctx context.Context, input RefreshTokenInput) (*AuthOutput, error)

	// Logout revokes the given refresh token.
	Logout(ctx context.Context, input LogoutInput) error

	// GetProfile returns the account of the authenticated user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateThemePreference stores the user's theme choice and returns the
	// updated account.
	UpdateThemePreference(ctx context.Context, userID uuid.UUID, theme entity.ThemePreference) (*entity.User, error)
}
