package repository

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for comment persistence.
var (
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrDuplicateComment is returned when the owner already commented on the video.
	ErrDuplicateComment = errors.New("comment already exists")
)

// CommentRepository defines the interface for comment-related database operations.
type CommentRepository interface {
	// Create persists a new comment. Returns ErrDuplicateComment on the (owner, video) index.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ListByVideo retrieves all comments of a video.
	ListByVideo(ctx context.Context, videoID uuid.UUID) ([]*entity.Comment, error)

	// UpdateContent replaces the content of a comment.
	UpdateContent(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByVideo removes all comments of a video and returns their IDs.
	DeleteByVideo(ctx context.Context, videoID uuid.UUID) ([]uuid.UUID, error)
}
