package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionType distinguishes time-boxed subscriptions from one-time gift cards.
type SubscriptionType string

const (
	SubscriptionTypeSubscription SubscriptionType = "subscription"
	SubscriptionTypeGiftcard     SubscriptionType = "giftcard"
)

// SubscriptionStatus is the lifecycle state of a sold access grant.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription is a sold access grant for a platform, tied to one customer.
// Invariants: ExpiryDate > StartDate, Cost > 0.
type Subscription struct {
	ID         uuid.UUID          `json:"id"`
	CustomerID uuid.UUID          `json:"customerId"`
	PlatformID uuid.UUID          `json:"platformId"`
	Type       SubscriptionType   `json:"type"`
	StartDate  time.Time          `json:"startDate"`
	ExpiryDate time.Time          `json:"expiryDate"`
	Cost       float64            `json:"cost"`
	Status     SubscriptionStatus `json:"status"`
	Notes      string             `json:"notes,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`

	// Customer and Platform are populated only by the detailed (joined)
	// fetch; nil on the plain collection read.
	Customer *Customer `json:"customer,omitempty"`
	Platform *Platform `json:"platform,omitempty"`
}
