// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"subhub/internal/domain/entity"
	"subhub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomer is returned when a customer with the same email already exists.
	ErrDuplicateCustomer = errors.New("customer already exists")
)

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	// ListCustomers retrieves all customers ordered by name.
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// FindCustomerByID retrieves a customer by its unique ID.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// CreateCustomer persists a new customer and fills in generated fields.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// UpdateCustomer modifies an existing customer.
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error

	// DeleteCustomer removes a customer by its ID.
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}
