// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"subhub/internal/domain/entity"
	domainerrors "subhub/internal/domain/errors"
	"subhub/internal/domain/repository"
	"subhub/internal/domain/service"
	"subhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	txManager    repository.TransactionManager
	cache        service.CollectionCache
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	TxManager    repository.TransactionManager
	Cache        service.CollectionCache
	Logger       *slog.Logger
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		txManager:    params.TxManager,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

// ListCustomers returns customers ordered by name, filtered by the search term.
func (s *customerService) ListCustomers(ctx context.Context, search string) ([]*entity.Customer, error) {
	customers, err := s.loadCustomers(ctx)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return customers, nil
	}

	needle := strings.ToLower(search)
	filtered := make([]*entity.Customer, 0, len(customers))
	for _, customer := range customers {
		if strings.Contains(strings.ToLower(customer.Name), needle) ||
			strings.Contains(strings.ToLower(customer.Email), needle) ||
			strings.Contains(strings.ToLower(customer.Phone), needle) {
			filtered = append(filtered, customer)
		}
	}

	return filtered, nil
}

// loadCustomers reads the full collection through the cache.
func (s *customerService) loadCustomers(ctx context.Context) ([]*entity.Customer, error) {
	var cached []*entity.Customer
	if hit, err := s.cache.Get(ctx, service.CacheKeyCustomers, &cached); err == nil && hit {
		return cached, nil
	}

	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	if err := s.cache.Set(ctx, service.CacheKeyCustomers, customers); err != nil {
		s.logger.WarnContext(ctx, "failed to cache customers", slog.Any("error", err))
	}

	return customers, nil
}

// GetCustomer returns a single customer.
func (s *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

// CreateCustomer stores a new customer record.
func (s *customerService) CreateCustomer(ctx context.Context, input usecase.CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}

	if err := s.customerRepo.CreateCustomer(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateCustomer) {
			return nil, domainerrors.ErrCustomerAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create customer")
	}

	s.invalidate(ctx, service.CacheKeyCustomers)

	return customer, nil
}

// UpdateCustomer replaces the editable fields of a customer.
func (s *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input usecase.CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		ID:      id,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}

	if err := s.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		switch {
		case errors.Is(err, repository.ErrCustomerNotFound):
			return nil, domainerrors.ErrCustomerNotFound
		case errors.Is(err, repository.ErrDuplicateCustomer):
			return nil, domainerrors.ErrCustomerAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to update customer")
	}

	updated, err := s.customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload customer after update")
	}

	s.invalidate(ctx, service.CacheKeyCustomers)

	return updated, nil
}

// DeleteCustomer removes a customer and all of its subscriptions in one transaction.
func (s *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		// Check existence inside the transaction so a concurrent delete is
		// reported as not found instead of silently succeeding.
		if _, err := factory.CustomerRepo().FindCustomerByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound
			}

			return errors.Wrap(err, "failed to find customer before delete")
		}

		if err := factory.SubscriptionRepo().DeleteSubscriptionsByCustomer(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete customer subscriptions")
		}

		if err := factory.CustomerRepo().DeleteCustomer(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound
			}

			return errors.Wrap(err, "failed to delete customer")
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, service.CacheKeyCustomers, service.CacheKeySubscriptions)

	return nil
}

func (s *customerService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.WarnContext(ctx, "cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}
