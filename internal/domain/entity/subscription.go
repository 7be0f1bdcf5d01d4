package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription records that a subscriber follows a channel. Both sides are users.
type Subscription struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the subscription.
	SubscriberID uuid.UUID // The user who subscribed.
	ChannelID    uuid.UUID // The channel (user) being followed.
	CreatedAt    time.Time // Timestamp of when the subscription was created.
}
