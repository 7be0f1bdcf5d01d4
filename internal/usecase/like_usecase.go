package usecase

import (
	"context"
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/pagination"

	"github.com/google/uuid"
)

// LikedVideoView is a liked video with the time of the like.
type LikedVideoView struct {
	VideoView
	LikedAt time.Time `json:"likedAt"`
}

// LikeUsecase defines the reaction operations.
type LikeUsecase interface {
	// Toggle removes the actor's like on target if present, otherwise adds it.
	Toggle(ctx context.Context, actor uuid.UUID, target entity.LikeTarget) (entity.ReactionState, error)
	ListLikedVideos(ctx context.Context, actor uuid.UUID, opts ListOptions) (*pagination.Page[LikedVideoView], error)
}
