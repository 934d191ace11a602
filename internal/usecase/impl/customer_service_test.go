package impl

import (
	"context"
	"log/slog"
	"testing"

	"subhub/internal/domain/entity"
	domainerrors "subhub/internal/domain/errors"
	"subhub/internal/domain/repository"
	"subhub/internal/domain/service"
	mockRepo "subhub/internal/mocks/repository"
	mockSvc "subhub/internal/mocks/service"
	"subhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomerService(t *testing.T) (usecase.CustomerUsecase, *mockRepo.MockCustomerRepository, *mockRepo.MockTransactionManager, *mockSvc.MockCollectionCache) {
	t.Helper()

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	cache := mockSvc.NewMockCollectionCache(t)

	svc := NewCustomerService(CustomerServiceParams{
		CustomerRepo: customerRepo,
		TxManager:    txManager,
		Cache:        cache,
		Logger:       slog.Default(),
	})

	return svc, customerRepo, txManager, cache
}

func TestCustomerService_ListCustomers(t *testing.T) {
	svc, customerRepo, _, cache := newCustomerService(t)
	ctx := context.Background()

	alice := &entity.Customer{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	bob := &entity.Customer{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}

	cache.EXPECT().Get(ctx, service.CacheKeyCustomers, mock.Anything).Return(false, nil)
	customerRepo.EXPECT().ListCustomers(ctx).Return([]*entity.Customer{alice, bob}, nil)
	cache.EXPECT().Set(ctx, service.CacheKeyCustomers, mock.Anything).Return(nil)

	customers, err := svc.ListCustomers(ctx, "")
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Alice", customers[0].Name)
	assert.Equal(t, "Bob", customers[1].Name)
}

func TestCustomerService_ListCustomers_SearchFiltersByNameAndEmail(t *testing.T) {
	svc, customerRepo, _, cache := newCustomerService(t)
	ctx := context.Background()

	alice := &entity.Customer{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	bob := &entity.Customer{ID: uuid.New(), Name: "Bob", Email: "bob@other.net"}

	cache.EXPECT().Get(ctx, service.CacheKeyCustomers, mock.Anything).Return(false, nil)
	customerRepo.EXPECT().ListCustomers(ctx).Return([]*entity.Customer{alice, bob}, nil)
	cache.EXPECT().Set(ctx, service.CacheKeyCustomers, mock.Anything).Return(nil)

	customers, err := svc.ListCustomers(ctx, "EXAMPLE")
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Alice", customers[0].Name)
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	svc, customerRepo, _, cache := newCustomerService(t)
	ctx := context.Background()

	customerRepo.EXPECT().
		CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) {
			customer.ID = uuid.New()
		}).
		Return(nil)
	cache.EXPECT().Invalidate(ctx, service.CacheKeyCustomers).Return(nil)

	customer, err := svc.CreateCustomer(ctx, usecase.CustomerInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, customer.ID)
	assert.Equal(t, "Alice", customer.Name)
	assert.Equal(t, "alice@example.com", customer.Email)
}

func TestCustomerService_UpdateCustomer(t *testing.T) {
	svc, customerRepo, _, cache := newCustomerService(t)
	ctx := context.Background()
	id := uuid.New()

	updated := &entity.Customer{ID: id, Name: "Alice Smith", Email: "alice@example.com"}

	customerRepo.EXPECT().UpdateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)
	customerRepo.EXPECT().FindCustomerByID(ctx, id).Return(updated, nil)
	cache.EXPECT().Invalidate(ctx, service.CacheKeyCustomers).Return(nil)

	customer, err := svc.UpdateCustomer(ctx, id, usecase.CustomerInput{
		Name:  "Alice Smith",
		Email: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", customer.Name)
}

func TestCustomerService_DeleteCustomer_CascadesInOneTransaction(t *testing.T) {
	svc, _, txManager, cache := newCustomerService(t)
	ctx := context.Background()
	id := uuid.New()

	txCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	txSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(txCustomerRepo)
	factory.EXPECT().SubscriptionRepo().Return(txSubscriptionRepo)

	txCustomerRepo.EXPECT().FindCustomerByID(ctx, id).Return(&entity.Customer{ID: id}, nil)
	txSubscriptionRepo.EXPECT().DeleteSubscriptionsByCustomer(ctx, id).Return(nil)
	txCustomerRepo.EXPECT().DeleteCustomer(ctx, id).Return(nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	cache.EXPECT().Invalidate(ctx, service.CacheKeyCustomers, service.CacheKeySubscriptions).Return(nil)

	err := svc.DeleteCustomer(ctx, id)
	require.NoError(t, err)
}

func TestCustomerService_DeleteCustomer_NotFound(t *testing.T) {
	svc, _, txManager, _ := newCustomerService(t)
	ctx := context.Background()
	id := uuid.New()

	txCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(txCustomerRepo)

	// A concurrent delete removed the row first.
	txCustomerRepo.EXPECT().FindCustomerByID(ctx, id).Return(nil, repository.ErrCustomerNotFound)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := svc.DeleteCustomer(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}
