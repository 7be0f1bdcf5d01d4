package media

import (
	"context"
	"log/slog"

	"vidtube/config"
	"vidtube/internal/domain/constants"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"go.uber.org/fx"
)

// StorageParams holds dependencies for MediaStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStorage selects the storage backend from media.provider
func NewMediaStorage(params StorageParams) (service.MediaStorage, error) {
	cfg := params.Config.Media
	logger := params.Logger.With(slog.String("component", "media"))

	switch cfg.Provider {
	case constants.MediaProviderCloudinary:
		logger.Info("Using Cloudinary media storage", slog.String("folder", cfg.Folder))

		return NewCloudinaryStorage(cfg, logger)

	case constants.MediaProviderS3:
		logger.Info("Using S3 media storage",
			slog.String("bucket", cfg.S3.Bucket),
			slog.String("endpoint", cfg.S3.Endpoint),
		)

		return NewS3Storage(params.Ctx, cfg, logger)

	case constants.MediaProviderBlob, "":
		storage, err := OpenBlobStorage(params.Ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using blob media storage", slog.String("bucket_url", cfg.Blob.BucketURL))

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return storage.Close()
			},
		})

		return storage, nil

	default:
		return nil, errors.Errorf("unknown media provider: %s", cfg.Provider)
	}
}

// Module provides the media storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMediaStorage),
)
