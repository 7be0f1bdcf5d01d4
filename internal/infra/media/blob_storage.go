package media

import (
	"context"
	"log/slog"
	"strings"

	"vidtube/config"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

// BlobStorage stores media in any bucket gocloud.dev can open.
type BlobStorage struct {
	bucket  *blob.Bucket
	folder  string
	baseURL string
	logger  *slog.Logger
}

// OpenBlobStorage opens cfg.Blob.BucketURL. The caller owns Close.
func OpenBlobStorage(ctx context.Context, cfg *config.MediaConfig, logger *slog.Logger) (*BlobStorage, error) {
	if strings.TrimSpace(cfg.Blob.BucketURL) == "" {
		return nil, errors.New("blob storage: bucketUrl is required")
	}
	if strings.TrimSpace(cfg.Blob.PublicBaseURL) == "" {
		return nil, errors.New("blob storage: publicBaseUrl is required")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Blob.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.Blob.BucketURL)
	}

	return NewBlobStorage(bucket, cfg.Folder, cfg.Blob.PublicBaseURL, logger), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, folder, publicBaseURL string, logger *slog.Logger) *BlobStorage {
	return &BlobStorage{
		bucket:  bucket,
		folder:  folder,
		baseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:  logger,
	}
}

func (s *BlobStorage) Upload(ctx context.Context, input service.UploadInput) (*service.UploadedMedia, error) {
	key := objectKey(s.folder, input.Kind, input.Name)

	if err := s.bucket.Upload(ctx, key, input.Reader, &blob.WriterOptions{
		ContentType: input.ContentType,
	}); err != nil {
		return nil, errors.Wrapf(err, "blob storage upload %s", key)
	}

	s.logger.DebugContext(ctx, "Uploaded media to bucket", slog.String("key", key))

	return &service.UploadedMedia{
		URL:      publicURL(s.baseURL, key),
		PublicID: key,
	}, nil
}

// Delete removes the object behind rawURL. A missing object is not an error.
func (s *BlobStorage) Delete(ctx context.Context, rawURL string) error {
	key, err := keyFromURL(s.baseURL, rawURL)
	if err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "blob storage delete %s", key)
	}

	return nil
}

func (s *BlobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
