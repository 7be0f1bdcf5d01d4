package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is an uploaded video and its metadata.
type Video struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the video.
	OwnerID     uuid.UUID // The channel that uploaded the video.
	VideoFile   string    // URL of the media asset.
	Thumbnail   string    // URL of the thumbnail image.
	Title       string
	Description string
	Duration    float64 // Length in seconds.
	Views       int64
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether the user uploaded the video.
func (v *Video) IsOwnedBy(userID uuid.UUID) bool {
	return v.OwnerID == userID
}

// VisibleTo reports whether the viewer may see the video. Unpublished videos are visible only to their owner.
// A nil viewer is an anonymous request.
func (v *Video) VisibleTo(viewer *uuid.UUID) bool {
	if v.IsPublished {
		return true
	}

	return viewer != nil && v.IsOwnedBy(*viewer)
}

// CountsViewFrom reports whether a fetch by the viewer increments the view counter.
func (v *Video) CountsViewFrom(viewer *uuid.UUID) bool {
	if !v.IsPublished {
		return false
	}

	return viewer == nil || !v.IsOwnedBy(*viewer)
}
