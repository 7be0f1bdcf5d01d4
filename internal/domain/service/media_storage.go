package service

import (
	"context"
	"io"
)

// MediaKind distinguishes uploaded videos from images.
type MediaKind string

const (
	MediaKindVideo MediaKind = "video"
	MediaKindImage MediaKind = "image"
)

// UploadInput describes a single file to store.
type UploadInput struct {
	Name        string // Original file name, used for the extension.
	ContentType string
	Kind        MediaKind
	Reader      io.Reader
	Size        int64
}

// UploadedMedia is the result of a successful upload.
type UploadedMedia struct {
	URL      string
	PublicID string
	Duration float64 // Seconds. Zero when the provider cannot measure it.
}

// MediaStorage stores user media and serves it by public URL.
type MediaStorage interface {
	// Upload stores the file and returns its public URL.
	Upload(ctx context.Context, input UploadInput) (*UploadedMedia, error)

	// Delete removes the asset behind a URL previously returned by Upload.
	Delete(ctx context.Context, url string) error
}
