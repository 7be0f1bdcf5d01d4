package usecase

import (
	"context"
	"time"

	"vidtube/internal/pagination"

	"github.com/google/uuid"
)

// PlaylistInput carries the playlist name and description.
type PlaylistInput struct {
	Name        string
	Description string
}

// PlaylistView is a playlist with its videos in playlist order.
type PlaylistView struct {
	ID          uuid.UUID   `json:"id"`
	OwnerID     uuid.UUID   `json:"ownerId"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	VideoCount  int         `json:"videoCount"`
	Videos      []VideoView `json:"videos"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// PlaylistUsecase defines the playlist operations. Every mutation requires ownership.
type PlaylistUsecase interface {
	CreatePlaylist(ctx context.Context, actor uuid.UUID, input *PlaylistInput) (*PlaylistView, error)
	GetPlaylist(ctx context.Context, actor, playlistID uuid.UUID) (*PlaylistView, error)
	UpdatePlaylist(ctx context.Context, actor, playlistID uuid.UUID, input *PlaylistInput) (*PlaylistView, error)
	DeletePlaylist(ctx context.Context, actor, playlistID uuid.UUID) error
	AddVideo(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*PlaylistView, error)
	RemoveVideo(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*PlaylistView, error)
	ListUserPlaylists(ctx context.Context, actor, userID uuid.UUID, opts ListOptions) (*pagination.Page[PlaylistView], error)
}
