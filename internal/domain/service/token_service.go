package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenPair carries a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims holds the validated claims of an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	TokenType string
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and validating session tokens.
type TokenService interface {
	// GenerateTokens issues a new access and refresh token pair for the user.
	GenerateTokens(userID uuid.UUID) (*TokenPair, error)

	// ValidateAccessToken parses and verifies an access token.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)

	// HashToken produces the storage hash of a refresh token. Only the hash
	// is persisted.
	HashToken(token string) string

	// RefreshTokenDuration reports how long a refresh token stays valid.
	RefreshTokenDuration() time.Duration
}
