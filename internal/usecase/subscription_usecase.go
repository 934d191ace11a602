package usecase

import (
	"context"
	"time"

	"subhub/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionInput defines the data accepted when creating or updating a subscription.
type SubscriptionInput struct {
	CustomerID uuid.UUID                 `json:"customerId" validate:"required"`
	PlatformID uuid.UUID                 `json:"platformId" validate:"required"`
	Type       entity.SubscriptionType   `json:"type" validate:"required,oneof=subscription giftcard"`
	StartDate  time.Time                 `json:"startDate" validate:"required"`
	ExpiryDate time.Time                 `json:"expiryDate" validate:"required,gtfield=StartDate"`
	Cost       float64                   `json:"cost" validate:"required,gt=0"`
	Status     entity.SubscriptionStatus `json:"status" validate:"required,oneof=active expired cancelled"`
	Notes      string                    `json:"notes" validate:"omitempty,max=1000"`
}

// SubscriptionView is a subscription enriched with derived fields for the API.
type SubscriptionView struct {
	entity.Subscription
	// DaysUntilExpiry counts whole days from now until the expiry date,
	// negative once expired.
	DaysUntilExpiry int `json:"daysUntilExpiry"`
}

// SubscriptionUsecase defines the interface for subscription-related business operations.
type SubscriptionUsecase interface {
	// ListSubscriptions returns subscriptions ordered by expiry date. When
	// embedDetails is true each record carries its customer and platform.
	// A non-empty search term filters by case-insensitive substring match on
	// the customer name, platform name and notes of embedded records.
	ListSubscriptions(ctx context.Context, search string, embedDetails bool) ([]*SubscriptionView, error)

	// GetSubscription returns a single subscription.
	GetSubscription(ctx context.Context, id uuid.UUID) (*SubscriptionView, error)

	// CreateSubscription stores a new subscription record.
	CreateSubscription(ctx context.Context, input SubscriptionInput) (*SubscriptionView, error)

	// UpdateSubscription replaces the editable fields of a subscription.
	UpdateSubscription(ctx context.Context, id uuid.UUID, input SubscriptionInput) (*SubscriptionView, error)

	// DeleteSubscription removes a single subscription.
	DeleteSubscription(ctx context.Context, id uuid.UUID) error
}
