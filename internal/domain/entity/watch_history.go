package entity

import (
	"time"

	"github.com/google/uuid"
)

// WatchHistoryEntry records the last time a user opened a video.
type WatchHistoryEntry struct {
	UserID    uuid.UUID
	VideoID   uuid.UUID
	WatchedAt time.Time
}
