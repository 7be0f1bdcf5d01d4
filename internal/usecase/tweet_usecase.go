package usecase

import (
	"context"
	"time"

	"vidtube/internal/pagination"

	"github.com/google/uuid"
)

// TweetView is a tweet with its like count.
type TweetView struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"ownerId"`
	Content    string    `json:"content"`
	TotalLikes int64     `json:"totalLikes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TweetUsecase defines the tweet operations.
type TweetUsecase interface {
	CreateTweet(ctx context.Context, actor uuid.UUID, content string) (*TweetView, error)
	ListUserTweets(ctx context.Context, userID uuid.UUID, opts ListOptions) (*pagination.Page[TweetView], error)
	UpdateTweet(ctx context.Context, actor, tweetID uuid.UUID, content string) (*TweetView, error)
	DeleteTweet(ctx context.Context, actor, tweetID uuid.UUID) error
}
