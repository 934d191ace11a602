package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform is a third-party service (streaming, dating, ...) whose access
// the business resells.
type Platform struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
