package repository

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/errors"

	"github.com/google/uuid"
)

// ErrVideoNotFound is returned when a video is not found.
var ErrVideoNotFound = errors.New("video not found")

// VideoFilter narrows a video listing. Zero values disable the matching criterion.
type VideoFilter struct {
	// Query is matched case-insensitively against title and description.
	Query         string
	OwnerID       *uuid.UUID
	PublishedOnly bool
}

// VideoRepository defines the interface for video-related database operations.
type VideoRepository interface {
	// Create persists a new video.
	Create(ctx context.Context, video *entity.Video) error

	// FindByID retrieves a video by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)

	// FindByIDs retrieves every video whose ID is in ids. Missing IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Video, error)

	// List retrieves the videos matching filter.
	List(ctx context.Context, filter VideoFilter) ([]*entity.Video, error)

	// Update saves title, description and thumbnail.
	Update(ctx context.Context, video *entity.Video) error

	// SetPublished sets the publish flag.
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error

	// IncrementViews atomically adds one view and returns the new counter.
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)

	// Delete removes a video by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByOwner returns how many videos the owner has uploaded.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// SumViewsByOwner returns the total views across the owner's videos.
	SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
