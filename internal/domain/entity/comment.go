package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user's comment on a video. A user comments at most once per video.
type Comment struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	VideoID   uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether the user wrote the comment.
func (c *Comment) IsOwnedBy(userID uuid.UUID) bool {
	return c.OwnerID == userID
}
