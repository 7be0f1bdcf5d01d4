package media

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	cloudinaryMaxRetries    = 3
	cloudinaryRetryDeadline = 15 * time.Second
)

type cloudinaryStorage struct {
	client *cloudinary.Cloudinary
	folder string
	logger *slog.Logger
}

// NewCloudinaryStorage creates a MediaStorage backed by Cloudinary.
func NewCloudinaryStorage(cfg *config.MediaConfig, logger *slog.Logger) (service.MediaStorage, error) {
	creds := cfg.Cloudinary
	if creds.CloudName == "" || creds.APIKey == "" || creds.APISecret == "" {
		return nil, errors.New("cloudinary credentials are missing")
	}

	client, err := cloudinary.NewFromParams(creds.CloudName, creds.APIKey, creds.APISecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize cloudinary")
	}

	return &cloudinaryStorage{
		client: client,
		folder: cfg.Folder,
		logger: logger,
	}, nil
}

func (s *cloudinaryStorage) Upload(ctx context.Context, input service.UploadInput) (*service.UploadedMedia, error) {
	params := uploader.UploadParams{
		Folder:       s.folder,
		ResourceType: "auto",
	}

	// A retry needs to resend the whole body, so only seekable readers are retried.
	seeker, rewindable := input.Reader.(io.Seeker)
	attempt := 0

	var result *uploader.UploadResult
	operation := func() error {
		attempt++
		if attempt > 1 {
			if !rewindable {
				return backoff.Permanent(errors.New("upload body cannot be rewound"))
			}
			if _, err := seeker.Seek(0, io.SeekStart); err != nil {
				return backoff.Permanent(errors.WithStack(err))
			}
		}

		var err error
		result, err = s.client.Upload.Upload(ctx, input.Reader, params)
		if err != nil {
			return errors.WithStack(err)
		}
		if result.Error.Message != "" {
			return backoff.Permanent(errors.New(result.Error.Message))
		}

		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = cloudinaryRetryDeadline

	err := backoff.RetryNotify(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, cloudinaryMaxRetries), ctx),
		func(err error, wait time.Duration) {
			s.logger.WarnContext(ctx, "Cloudinary upload attempt failed",
				slog.String("file", input.Name),
				slog.Any("error", err),
				slog.Duration("backoff", wait),
			)
		},
	)
	if err != nil {
		return nil, errors.Wrapf(err, "cloudinary upload %s", input.Name)
	}

	return &service.UploadedMedia{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Duration: durationFrom(result.Response),
	}, nil
}

func (s *cloudinaryStorage) Delete(ctx context.Context, rawURL string) error {
	publicID, resourceType, err := cloudinaryAsset(s.folder, rawURL)
	if err != nil {
		return err
	}

	result, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return errors.Wrapf(err, "cloudinary destroy %s", publicID)
	}
	if result.Error.Message != "" {
		return errors.Errorf("cloudinary destroy %s: %s", publicID, result.Error.Message)
	}

	return nil
}

// cloudinaryAsset derives the public ID and resource type from a delivery URL like
// https://res.cloudinary.com/<cloud>/video/upload/v123/<folder>/<id>.mp4
func cloudinaryAsset(folder, rawURL string) (publicID, resourceType string, err error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Path == "" {
		return "", "", errors.Wrapf(ErrForeignURL, "url %q", rawURL)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 3 {
		return "", "", errors.Wrapf(ErrForeignURL, "url %q", rawURL)
	}

	resourceType = "image"
	for _, segment := range segments {
		if segment == "video" || segment == "raw" {
			resourceType = segment

			break
		}
	}

	last := segments[len(segments)-1]
	id := strings.TrimSuffix(last, path.Ext(last))
	if id == "" {
		return "", "", errors.Wrapf(ErrForeignURL, "url %q", rawURL)
	}
	if folder != "" {
		id = folder + "/" + id
	}

	return id, resourceType, nil
}

// durationFrom reads the "duration" field of the raw upload response.
func durationFrom(raw any) float64 {
	fields, ok := raw.(map[string]any)
	if !ok {
		return 0
	}

	duration, _ := fields["duration"].(float64)

	return duration
}
