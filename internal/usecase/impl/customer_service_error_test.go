package impl

import (
	"context"
	"testing"

	domainerrors "subhub/internal/domain/errors"
	"subhub/internal/domain/repository"
	"subhub/internal/domain/service"
	"subhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCustomerService_ListCustomers_RepositoryError(t *testing.T) {
	svc, customerRepo, _, cache := newCustomerService(t)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, service.CacheKeyCustomers, mock.Anything).Return(false, nil)
	customerRepo.EXPECT().ListCustomers(ctx).Return(nil, errors.New("connection refused"))

	customers, err := svc.ListCustomers(ctx, "")
	assert.Error(t, err)
	assert.Nil(t, customers)
	assert.Contains(t, err.Error(), "failed to list customers")
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	svc, customerRepo, _, _ := newCustomerService(t)
	ctx := context.Background()
	id := uuid.New()

	customerRepo.EXPECT().FindCustomerByID(ctx, id).Return(nil, repository.ErrCustomerNotFound)

	customer, err := svc.GetCustomer(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	assert.Nil(t, customer)
}

func TestCustomerService_CreateCustomer_DuplicateEmail(t *testing.T) {
	svc, customerRepo, _, _ := newCustomerService(t)
	ctx := context.Background()

	customerRepo.EXPECT().
		CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(repository.ErrDuplicateCustomer)

	customer, err := svc.CreateCustomer(ctx, usecase.CustomerInput{
		Name:  "Alice",
		Email: "alice@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerAlreadyExists)
	assert.Nil(t, customer)
}

func TestCustomerService_UpdateCustomer_NotFound(t *testing.T) {
	svc, customerRepo, _, _ := newCustomerService(t)
	ctx := context.Background()
	id := uuid.New()

	customerRepo.EXPECT().
		UpdateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(repository.ErrCustomerNotFound)

	customer, err := svc.UpdateCustomer(ctx, id, usecase.CustomerInput{
		Name:  "Ghost",
		Email: "ghost@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	assert.Nil(t, customer)
}
