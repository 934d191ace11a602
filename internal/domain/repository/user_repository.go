package repository

import (
	"context"

	"subhub/internal/domain/entity"
	"subhub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a user with the same email already exists.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the interface for admin-account database operations.
type UserRepository interface {
	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// CreateUser persists a new user and fills in generated fields.
	CreateUser(ctx context.Context, user *entity.User) error

	// UpdateThemePreference persists the user's theme choice.
	UpdateThemePreference(ctx context.Context, id uuid.UUID, theme entity.ThemePreference) error
}
