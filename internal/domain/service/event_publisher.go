package service

import (
	"context"
	"time"
)

// VideoEventType names a video lifecycle transition.
type VideoEventType string

const (
	VideoEventPublished   VideoEventType = "video.published"
	VideoEventUnpublished VideoEventType = "video.unpublished"
	VideoEventDeleted     VideoEventType = "video.deleted"
)

// VideoEvent is published after a video lifecycle change has been committed
type VideoEvent struct {
	Type       VideoEventType `json:"type"`
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	VideoID    string         `json:"video_id"`
	OwnerID    string         `json:"owner_id"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVideoEvent publishes a video lifecycle event
	PublishVideoEvent(ctx context.Context, event *VideoEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
