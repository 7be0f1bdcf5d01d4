package repository

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for playlist persistence.
var (
	// ErrPlaylistNotFound is returned when a playlist is not found.
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrDuplicatePlaylistVideo is returned when the video is already in the playlist.
	ErrDuplicatePlaylistVideo = errors.New("video already in playlist")
	// ErrPlaylistVideoNotFound is returned when removing a video the playlist does not hold.
	ErrPlaylistVideoNotFound = errors.New("video not in playlist")
)

// PlaylistRepository defines the interface for playlist-related database operations.
// Returned playlists carry their video IDs ordered by position.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)

	// Update saves name and description.
	Update(ctx context.Context, playlist *entity.Playlist) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AddVideo appends videoID after the last position.
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error

	// RemoveVideo removes videoID from the playlist.
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error

	// RemoveVideoEverywhere removes videoID from every playlist.
	RemoveVideoEverywhere(ctx context.Context, videoID uuid.UUID) error
}
