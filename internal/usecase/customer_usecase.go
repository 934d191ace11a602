// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"subhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CustomerInput defines the data accepted when creating or updating a customer.
type CustomerInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Address string `json:"address" validate:"omitempty,max=500"`
}

// CustomerUsecase defines the interface for customer-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CustomerUsecase interface {
	// ListCustomers returns customers ordered by name. A non-empty search term
	// filters by case-insensitive substring match on name, email and phone.
	ListCustomers(ctx context.Context, search string) ([]*entity.Customer, error)

	// GetCustomer returns a single customer.
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// CreateCustomer stores a new customer record.
	CreateCustomer(ctx context.Context, input CustomerInput) (*entity.Customer, error)

	// UpdateCustomer replaces the editable fields of a customer.
	UpdateCustomer(ctx context.Context, id uuid.UUID, input CustomerInput) (*entity.Customer, error)

	// DeleteCustomer removes a customer together with all of its
	// subscriptions in one transaction.
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}
