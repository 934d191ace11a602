package postgres

import (
	"context"

	"subhub/internal/domain/entity"
	domainerrors "subhub/internal/domain/errors"
	"subhub/internal/domain/repository"
	"subhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// ListSubscriptions retrieves all subscriptions ordered by expiry date.
func (repo *subscriptionRepository) ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Order("expiry_date ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// ListSubscriptionsWithDetails retrieves all subscriptions ordered by expiry
// date with customer and platform rows preloaded in one round trip.
func (repo *subscriptionRepository) ListSubscriptionsWithDetails(ctx context.Context) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Platform").
		Order("expiry_date ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions with details")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// FindSubscriptionByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// CreateSubscription persists a new subscription.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subscription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	// Update the entity with generated values
	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// UpdateSubscription modifies an existing subscription.
func (repo *subscriptionRepository) UpdateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", subscription.ID).
		Updates(map[string]any{
			"customer_id": subscription.CustomerID,
			"platform_id": subscription.PlatformID,
			"type":        string(subscription.Type),
			"start_date":  subscription.StartDate,
			"expiry_date": subscription.ExpiryDate,
			"cost":        subscription.Cost,
			"status":      string(subscription.Status),
			"notes":       subscription.Notes,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidReference
		}

		return errors.Wrap(result.Error, "failed to update subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeleteSubscription removes a subscription by its ID.
func (repo *subscriptionRepository) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeleteSubscriptionsByCustomer removes all subscriptions for a customer.
// Zero affected rows is fine, the customer may have no subscriptions.
func (repo *subscriptionRepository) DeleteSubscriptionsByCustomer(ctx context.Context, customerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.SubscriptionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete subscriptions by customer")
	}

	return nil
}

// DeleteSubscriptionsByPlatform removes all subscriptions for a platform.
func (repo *subscriptionRepository) DeleteSubscriptionsByPlatform(ctx context.Context, platformID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("platform_id = ?", platformID).
		Delete(&model.SubscriptionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete subscriptions by platform")
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		PlatformID: data.PlatformID,
		Type:       entity.SubscriptionType(data.Type),
		StartDate:  data.StartDate,
		ExpiryDate: data.ExpiryDate,
		Cost:       data.Cost,
		Status:     entity.SubscriptionStatus(data.Status),
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		Customer:   toCustomerDomain(data.Customer),
		Platform:   toPlatformDomain(data.Platform),
	}
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		PlatformID: data.PlatformID,
		Type:       string(data.Type),
		StartDate:  data.StartDate,
		ExpiryDate: data.ExpiryDate,
		Cost:       data.Cost,
		Status:     string(data.Status),
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
