package media

import (
	"context"
	"log/slog"
	"strings"

	"vidtube/config"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const s3PartSize = 5 * 1024 * 1024

type s3Storage struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	folder   string
	baseURL  string
	logger   *slog.Logger
}

// NewS3Storage configures an uploader targeting an S3 compatible object store.
// A custom endpoint switches to path-style addressing for MinIO and similar servers.
func NewS3Storage(ctx context.Context, cfg *config.MediaConfig, logger *slog.Logger) (service.MediaStorage, error) {
	s3cfg := cfg.S3
	if strings.TrimSpace(s3cfg.Bucket) == "" {
		return nil, errors.New("s3 storage: bucket is required")
	}
	if strings.TrimSpace(s3cfg.BaseURL) == "" {
		return nil, errors.New("s3 storage: baseUrl is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(s3cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint := strings.TrimSpace(s3cfg.Endpoint); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = s3PartSize
		u.LeavePartsOnError = false
	})

	return &s3Storage{
		client:   client,
		uploader: uploader,
		bucket:   s3cfg.Bucket,
		folder:   cfg.Folder,
		baseURL:  strings.TrimSuffix(s3cfg.BaseURL, "/"),
		logger:   logger,
	}, nil
}

func (s *s3Storage) Upload(ctx context.Context, input service.UploadInput) (*service.UploadedMedia, error) {
	key := objectKey(s.folder, input.Kind, input.Name)

	putInput := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   input.Reader,
		ACL:    s3types.ObjectCannedACLPublicRead,
	}
	if input.ContentType != "" {
		putInput.ContentType = aws.String(input.ContentType)
	}

	if _, err := s.uploader.Upload(ctx, putInput); err != nil {
		return nil, errors.Wrapf(err, "s3 storage upload %s", key)
	}

	s.logger.DebugContext(ctx, "Uploaded media to S3",
		slog.String("bucket", s.bucket),
		slog.String("key", key),
	)

	return &service.UploadedMedia{
		URL:      publicURL(s.baseURL, key),
		PublicID: key,
	}, nil
}

func (s *s3Storage) Delete(ctx context.Context, rawURL string) error {
	key, err := keyFromURL(s.baseURL, rawURL)
	if err != nil {
		return err
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return errors.Wrapf(err, "s3 storage delete %s", key)
	}

	return nil
}
