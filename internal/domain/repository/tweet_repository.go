package repository

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/errors"

	"github.com/google/uuid"
)

// ErrTweetNotFound is returned when a tweet is not found.
var ErrTweetNotFound = errors.New("tweet not found")

// TweetRepository defines the interface for tweet-related database operations.
type TweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error)
	UpdateContent(ctx context.Context, tweet *entity.Tweet) error
	Delete(ctx context.Context, id uuid.UUID) error
}
