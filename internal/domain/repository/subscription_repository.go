package repository

import (
	"context"

	"subhub/internal/domain/entity"
	"subhub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the interface for subscription-related database operations.
type SubscriptionRepository interface {
	// ListSubscriptions retrieves all subscriptions ordered by expiry date.
	ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error)

	// ListSubscriptionsWithDetails retrieves all subscriptions ordered by
	// expiry date with their customer and platform records embedded, in a
	// single round trip.
	ListSubscriptionsWithDetails(ctx context.Context) ([]*entity.Subscription, error)

	// FindSubscriptionByID retrieves a subscription by its unique ID.
	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// CreateSubscription persists a new subscription and fills in generated fields.
	CreateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// UpdateSubscription modifies an existing subscription.
	UpdateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// DeleteSubscription removes a subscription by its ID.
	DeleteSubscription(ctx context.Context, id uuid.UUID) error

	// DeleteSubscriptionsByCustomer removes all subscriptions referencing the
	// customer. Used by the transactional cascading delete.
	DeleteSubscriptionsByCustomer(ctx context.Context, customerID uuid.UUID) error

	// DeleteSubscriptionsByPlatform removes all subscriptions referencing the
	// platform. Used by the transactional cascading delete.
	DeleteSubscriptionsByPlatform(ctx context.Context, platformID uuid.UUID) error
}
