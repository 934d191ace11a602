package entity

import (
	"time"

	"github.com/google/uuid"
)

// ThemePreference is the persisted UI theme choice for an admin account.
type ThemePreference string

const (
	ThemeLight ThemePreference = "light"
	ThemeDark  ThemePreference = "dark"
	// ThemeSystem defers to the client's OS-level preference.
	ThemeSystem ThemePreference = "system"
)

// User is an admin account that can sign in to the dashboard.
type User struct {
	ID           uuid.UUID       `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	PasswordHash string          `json:"-"`
	Theme        ThemePreference `json:"theme"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// RefreshToken is a persisted session record. Only the SHA-256 hash of the
// issued refresh token is stored.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
