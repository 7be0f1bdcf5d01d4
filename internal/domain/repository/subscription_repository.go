package repository

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDuplicateSubscription is returned when trying to create a subscription that already exists.
	ErrDuplicateSubscription = errors.New("subscription already exists")
)

// SubscriptionRepository defines the interface for subscription-related database operations.
type SubscriptionRepository interface {
	// Find retrieves a subscription by subscriber and channel IDs.
	Find(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.Subscription, error)

	// Create persists a new subscription. Returns ErrDuplicateSubscription on the unique index.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// Delete removes a subscription by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListBySubscriber retrieves the subscriptions held by subscriberID.
	ListBySubscriber(ctx context.Context, subscriberID uuid.UUID) ([]*entity.Subscription, error)

	// ListByChannel retrieves the subscriptions to channelID.
	ListByChannel(ctx context.Context, channelID uuid.UUID) ([]*entity.Subscription, error)

	// CountByChannels counts subscribers per channel ID.
	CountByChannels(ctx context.Context, channelIDs []uuid.UUID) (map[uuid.UUID]int64, error)

	// CountBySubscribers counts subscribed channels per subscriber ID.
	CountBySubscribers(ctx context.Context, subscriberIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}
