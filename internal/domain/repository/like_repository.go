package repository

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for like persistence.
var (
	// ErrLikeNotFound is returned when the actor has no like on the target.
	ErrLikeNotFound = errors.New("like not found")
	// ErrDuplicateLike is returned when the (liked_by, target) triple already exists.
	ErrDuplicateLike = errors.New("like already exists")
)

// LikeRepository defines the interface for like-related database operations.
type LikeRepository interface {
	// Find retrieves the like that likedBy placed on target.
	Find(ctx context.Context, likedBy uuid.UUID, target entity.LikeTarget) (*entity.Like, error)

	// Create persists a new like. Returns ErrDuplicateLike on the unique index.
	Create(ctx context.Context, like *entity.Like) error

	// Delete removes a like by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUser retrieves the likes of one kind placed by likedBy.
	ListByUser(ctx context.Context, likedBy uuid.UUID, kind entity.TargetKind) ([]*entity.Like, error)

	// CountByTargets counts likes per target ID. IDs without likes are absent from the map.
	CountByTargets(ctx context.Context, kind entity.TargetKind, ids []uuid.UUID) (map[uuid.UUID]int64, error)

	// CountOnOwnerVideos counts likes placed on any video owned by ownerID.
	CountOnOwnerVideos(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// DeleteByTargets removes every like on the given targets.
	DeleteByTargets(ctx context.Context, kind entity.TargetKind, ids []uuid.UUID) error
}
