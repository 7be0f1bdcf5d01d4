package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// WatchHistoryRepository defines the interface for watch history persistence.
type WatchHistoryRepository interface {
	// Record inserts the entry or refreshes watched_at when the pair already exists.
	Record(ctx context.Context, entry *entity.WatchHistoryEntry) error

	// ListByUser retrieves the user's history.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WatchHistoryEntry, error)

	// DeleteByVideo removes the video from every user's history.
	DeleteByVideo(ctx context.Context, videoID uuid.UUID) error
}
