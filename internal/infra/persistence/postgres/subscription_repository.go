package postgres

import (
	"context"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
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

// Find retrieves a subscription by subscriber and channel IDs.
func (repo *subscriptionRepository) Find(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by subscriber and channel")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// Create persists a new subscription relationship.
func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscription
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrSelfSubscription
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt

	return nil
}

// Delete removes a subscription by its ID.
func (repo *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SubscriptionModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete subscription")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// ListBySubscriber retrieves the subscriptions held by subscriberID, newest first.
func (repo *subscriptionRepository) ListBySubscriber(ctx context.Context, subscriberID uuid.UUID) ([]*entity.Subscription, error) {
	return repo.list(ctx, "subscriber_id = ?", subscriberID)
}

// ListByChannel retrieves the subscriptions to channelID, newest first.
func (repo *subscriptionRepository) ListByChannel(ctx context.Context, channelID uuid.UUID) ([]*entity.Subscription, error) {
	return repo.list(ctx, "channel_id = ?", channelID)
}

// CountByChannels counts subscribers per channel ID.
func (repo *subscriptionRepository) CountByChannels(ctx context.Context, channelIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return repo.countBy(ctx, "channel_id", channelIDs)
}

// CountBySubscribers counts subscribed channels per subscriber ID.
func (repo *subscriptionRepository) CountBySubscribers(ctx context.Context, subscriberIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return repo.countBy(ctx, "subscriber_id", subscriberIDs)
}

func (repo *subscriptionRepository) list(ctx context.Context, cond string, id uuid.UUID) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where(cond, id).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// countBy groups on column, which is always one of the two fixed column names above.
func (repo *subscriptionRepository) countBy(ctx context.Context, column string, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []model.TargetCount
	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Select(column+" AS target_id, COUNT(*) AS total").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to count subscriptions by %s", column)
	}

	for _, row := range rows {
		counts[row.TargetID] = row.Total
	}

	return counts, nil
}

// --- Mapper Functions ---

func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:           data.ID,
		SubscriberID: data.SubscriberID,
		ChannelID:    data.ChannelID,
		CreatedAt:    data.CreatedAt,
	}
}

func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:           data.ID,
		SubscriberID: data.SubscriberID,
		ChannelID:    data.ChannelID,
		CreatedAt:    data.CreatedAt,
	}
}
