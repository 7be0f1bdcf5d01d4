package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tweet is a short text post on a channel.
type Tweet struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether the user posted the tweet.
func (t *Tweet) IsOwnedBy(userID uuid.UUID) bool {
	return t.OwnerID == userID
}
