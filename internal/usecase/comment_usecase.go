package usecase

import (
	"context"
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/pagination"

	"github.com/google/uuid"
)

// CommentView is a comment with its author and like count.
type CommentView struct {
	ID        uuid.UUID          `json:"id"`
	VideoID   uuid.UUID          `json:"videoId"`
	Content   string             `json:"content"`
	Owner     entity.UserProfile `json:"owner"`
	LikeCount int64              `json:"likeCount"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// CommentUsecase defines the comment operations.
type CommentUsecase interface {
	ListComments(ctx context.Context, viewer *uuid.UUID, videoID uuid.UUID, opts ListOptions) (*pagination.Page[CommentView], error)
	AddComment(ctx context.Context, actor, videoID uuid.UUID, content string) (*CommentView, error)
	UpdateComment(ctx context.Context, actor, commentID uuid.UUID, content string) (*CommentView, error)

	// DeleteComment is allowed for the comment author and for the owner of the video.
	DeleteComment(ctx context.Context, actor, commentID uuid.UUID) error
}
