package usecase

import (
	"context"
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/pagination"

	"github.com/google/uuid"
)

// VideoView is the read model of a video with its owner and like count.
type VideoView struct {
	ID          uuid.UUID           `json:"id"`
	VideoFile   string              `json:"videoFile"`
	Thumbnail   string              `json:"thumbnail"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Duration    float64             `json:"duration"`
	Views       int64               `json:"views"`
	IsPublished bool                `json:"isPublished"`
	OwnerID     uuid.UUID           `json:"ownerId"`
	Owner       *entity.UserProfile `json:"owner,omitempty"`
	LikeCount   int64               `json:"likeCount"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// NewVideoView projects a video without joined data.
func NewVideoView(video *entity.Video) VideoView {
	return VideoView{
		ID:          video.ID,
		VideoFile:   video.VideoFile,
		Thumbnail:   video.Thumbnail,
		Title:       video.Title,
		Description: video.Description,
		Duration:    video.Duration,
		Views:       video.Views,
		IsPublished: video.IsPublished,
		OwnerID:     video.OwnerID,
		CreatedAt:   video.CreatedAt,
		UpdatedAt:   video.UpdatedAt,
	}
}

// ListVideosInput filters the public video list.
type ListVideosInput struct {
	ListOptions
	Query  string     // Case-insensitive substring of title or description.
	UserID *uuid.UUID // Restrict to one channel.
}

// PublishVideoInput defines the data required to upload a video.
type PublishVideoInput struct {
	Title       string
	Description string
	VideoFile   *FileInput
	Thumbnail   *FileInput
	Duration    float64 // Used when the media provider does not report one.
}

// UpdateVideoInput carries the editable video fields. Empty fields are left unchanged.
type UpdateVideoInput struct {
	Title       string
	Description string
	Thumbnail   *FileInput
}

// VideoUsecase defines the video operations. actor is nil for anonymous requests.
type VideoUsecase interface {
	ListVideos(ctx context.Context, actor *uuid.UUID, input *ListVideosInput) (*pagination.Page[VideoView], error)
	PublishVideo(ctx context.Context, actor uuid.UUID, input *PublishVideoInput) (*VideoView, error)
	GetVideo(ctx context.Context, actor *uuid.UUID, videoID uuid.UUID) (*VideoView, error)
	UpdateVideo(ctx context.Context, actor, videoID uuid.UUID, input *UpdateVideoInput) (*VideoView, error)
	DeleteVideo(ctx context.Context, actor, videoID uuid.UUID) error
	TogglePublish(ctx context.Context, actor, videoID uuid.UUID) (*VideoView, error)
}
