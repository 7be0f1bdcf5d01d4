package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Playlist is a user-curated ordered list of videos without duplicates.
type Playlist struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	VideoIDs    []uuid.UUID // Ordered by insertion position.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether the user created the playlist.
func (p *Playlist) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

// Contains reports whether the video is already in the playlist.
func (p *Playlist) Contains(videoID uuid.UUID) bool {
	return slices.Contains(p.VideoIDs, videoID)
}
