package usecase

import (
	"context"

	"vidtube/internal/pagination"

	"github.com/google/uuid"
)

// ChannelStats summarizes a channel for its owner.
type ChannelStats struct {
	TotalVideoViews  int64 `json:"totalVideoViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalVideos      int64 `json:"totalVideos"`
	TotalLikes       int64 `json:"totalLikes"`
}

// DashboardUsecase defines the channel owner's dashboard.
type DashboardUsecase interface {
	GetChannelStats(ctx context.Context, actor uuid.UUID) (*ChannelStats, error)

	// ListChannelVideos includes unpublished videos.
	ListChannelVideos(ctx context.Context, actor uuid.UUID, opts ListOptions) (*pagination.Page[VideoView], error)
}
