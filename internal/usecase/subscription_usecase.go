package usecase

import (
	"context"
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/pagination"

	"github.com/google/uuid"
)

// SubscribedChannelView is a channel the actor follows.
type SubscribedChannelView struct {
	ID           uuid.UUID          `json:"id"`
	Channel      entity.UserProfile `json:"channel"`
	SubscribedAt time.Time          `json:"subscribedAt"`
}

// SubscriberView is a user following the channel.
type SubscriberView struct {
	ID           uuid.UUID          `json:"id"`
	Subscriber   entity.UserProfile `json:"subscriber"`
	SubscribedAt time.Time          `json:"subscribedAt"`
}

// SubscriptionUsecase defines the channel subscription operations.
type SubscriptionUsecase interface {
	// Toggle subscribes the actor to the channel, or unsubscribes when already subscribed.
	Toggle(ctx context.Context, actor, channelID uuid.UUID) (entity.ReactionState, error)
	ListSubscribedChannels(ctx context.Context, actor uuid.UUID, opts ListOptions) (*pagination.Page[SubscribedChannelView], error)
	CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error)

	// ListSubscribers is only available to the channel itself.
	ListSubscribers(ctx context.Context, actor, channelID uuid.UUID, opts ListOptions) (*pagination.Page[SubscriberView], error)

	// GenerateSubscriptionQR returns a PNG encoding a subscribe link for the channel.
	GenerateSubscriptionQR(ctx context.Context, channelID uuid.UUID) ([]byte, error)

	// SubscribeByQR subscribes the actor to the channel in qrData. It never unsubscribes.
	SubscribeByQR(ctx context.Context, actor uuid.UUID, qrData string) (entity.ReactionState, error)
}
