package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
	"vidtube/internal/pagination"
	"vidtube/internal/usecase"
	"vidtube/internal/usecase/aggregate"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxDescriptionLength = 1000

type videoService struct {
	txManager        repository.TransactionManager
	videoRepo        repository.VideoRepository
	userRepo         repository.UserRepository
	likeRepo         repository.LikeRepository
	watchHistoryRepo repository.WatchHistoryRepository
	media            service.MediaStorage
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// VideoServiceParams holds dependencies for VideoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	VideoRepo        repository.VideoRepository
	UserRepo         repository.UserRepository
	LikeRepo         repository.LikeRepository
	WatchHistoryRepo repository.WatchHistoryRepository
	Media            service.MediaStorage
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewVideoService is the constructor for videoService.
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		txManager:        params.TxManager,
		videoRepo:        params.VideoRepo,
		userRepo:         params.UserRepo,
		likeRepo:         params.LikeRepo,
		watchHistoryRepo: params.WatchHistoryRepo,
		media:            params.Media,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

var videoErrors = map[error]error{
	repository.ErrVideoNotFound: domainerrors.ErrVideoNotFound,
	repository.ErrUserNotFound:  domainerrors.ErrUserNotFound,
}

var videoListSorts = videoSortSpec("createdAt", nil)

// ListVideos searches published videos. A channel listing its own videos also sees its drafts.
func (srv *videoService) ListVideos(ctx context.Context, actor *uuid.UUID, input *usecase.ListVideosInput) (*pagination.Page[usecase.VideoView], error) {
	sort, err := videoListSorts.Resolve(input.SortBy, input.SortType)
	if err != nil {
		return nil, err
	}

	filter := repository.VideoFilter{
		Query:         input.Query,
		OwnerID:       input.UserID,
		PublishedOnly: true,
	}
	if actor != nil && input.UserID != nil && *actor == *input.UserID {
		filter.PublishedOnly = false
	}

	pipeline := aggregate.Pipeline[videoRow, usecase.VideoView]{
		Filter: func(ctx context.Context) ([]*videoRow, error) {
			videos, err := srv.videoRepo.List(ctx, filter)
			if err != nil {
				return nil, errors.Wrap(err, "failed to list videos")
			}

			return videoRows(videos), nil
		},
		Stages: videoJoins(srv.userRepo, srv.likeRepo),
		Sort:   sort,
		Shape:  shapeVideo,
	}

	views, err := pipeline.Run(ctx)
	if err != nil {
		return nil, err
	}

	return paginate(views, input.ListOptions, "videos"), nil
}

// PublishVideo uploads the media and stores the video as a draft.
func (srv *videoService) PublishVideo(ctx context.Context, actor uuid.UUID, input *usecase.PublishVideoInput) (*usecase.VideoView, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title and description are required")
	}
	if err := checkDescription(description); err != nil {
		return nil, err
	}
	if input.VideoFile == nil {
		return nil, domainerrors.ErrMissingFile.WithDetails("videoFile is required")
	}
	if input.Thumbnail == nil {
		return nil, domainerrors.ErrMissingFile.WithDetails("thumbnail is required")
	}

	videoFile, err := uploadMedia(ctx, srv.media, service.MediaKindVideo, input.VideoFile)
	if err != nil {
		return nil, err
	}

	thumbnail, err := uploadMedia(ctx, srv.media, service.MediaKindImage, input.Thumbnail)
	if err != nil {
		discardMedia(ctx, srv.media, srv.log(ctx), videoFile.URL)

		return nil, err
	}

	duration := videoFile.Duration
	if duration <= 0 {
		duration = input.Duration
	}

	video := &entity.Video{
		OwnerID:     actor,
		VideoFile:   videoFile.URL,
		Thumbnail:   thumbnail.URL,
		Title:       title,
		Description: description,
		Duration:    duration,
	}

	if err := srv.videoRepo.Create(ctx, video); err != nil {
		srv.log(ctx).Warn("Failed to store video, discarding uploaded media", slog.Any("ownerID", actor), slog.Any("error", err))
		discardMedia(ctx, srv.media, srv.log(ctx), videoFile.URL, thumbnail.URL)

		return nil, translate(err, "failed to create video", videoErrors)
	}

	srv.log(ctx).Info("Video uploaded", slog.Any("videoID", video.ID), slog.Any("ownerID", actor))

	return srv.loadView(ctx, video)
}

// GetVideo applies the view policy: drafts are hidden from everyone but the owner,
// and views count only for published videos fetched by someone other than the owner.
func (srv *videoService) GetVideo(ctx context.Context, actor *uuid.UUID, videoID uuid.UUID) (*usecase.VideoView, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, translate(err, "failed to find video", videoErrors)
	}
	if !video.VisibleTo(actor) {
		return nil, domainerrors.ErrVideoNotFound
	}

	if video.CountsViewFrom(actor) {
		views, err := srv.videoRepo.IncrementViews(ctx, videoID)
		if err != nil {
			return nil, translate(err, "failed to increment views", videoErrors)
		}
		video.Views = views
	}

	if actor != nil {
		entry := &entity.WatchHistoryEntry{UserID: *actor, VideoID: videoID, WatchedAt: time.Now().UTC()}
		if err := srv.watchHistoryRepo.Record(ctx, entry); err != nil {
			srv.log(ctx).Warn("Failed to record watch history", slog.Any("videoID", videoID), slog.Any("error", err))
		}
	}

	return srv.loadView(ctx, video)
}

// UpdateVideo changes the fields the owner supplied; blank fields are kept. A new
// thumbnail replaces the old one, which is deleted only once the row is saved.
func (srv *videoService) UpdateVideo(ctx context.Context, actor, videoID uuid.UUID, input *usecase.UpdateVideoInput) (*usecase.VideoView, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" && description == "" && input.Thumbnail == nil {
		return nil, domainerrors.ErrNothingToUpdate
	}
	if err := checkDescription(description); err != nil {
		return nil, err
	}

	video, err := srv.ownedVideo(ctx, actor, videoID)
	if err != nil {
		return nil, err
	}

	if title != "" {
		video.Title = title
	}
	if description != "" {
		video.Description = description
	}

	previousThumbnail := ""
	if input.Thumbnail != nil {
		thumbnail, err := uploadMedia(ctx, srv.media, service.MediaKindImage, input.Thumbnail)
		if err != nil {
			return nil, err
		}
		previousThumbnail = video.Thumbnail
		video.Thumbnail = thumbnail.URL
	}

	if err := srv.videoRepo.Update(ctx, video); err != nil {
		if previousThumbnail != "" {
			discardMedia(ctx, srv.media, srv.log(ctx), video.Thumbnail)
		}

		return nil, translate(err, "failed to update video", videoErrors)
	}

	discardMedia(ctx, srv.media, srv.log(ctx), previousThumbnail)

	return srv.loadView(ctx, video)
}

// DeleteVideo removes the video and everything that references it in one transaction.
// Media and the lifecycle event follow the commit.
func (srv *videoService) DeleteVideo(ctx context.Context, actor, videoID uuid.UUID) error {
	video, err := srv.ownedVideo(ctx, actor, videoID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		commentIDs, err := f.NewCommentRepository().DeleteByVideo(ctx, videoID)
		if err != nil {
			return errors.Wrap(err, "failed to delete comments")
		}

		likeRepo := f.NewLikeRepository()
		if err := likeRepo.DeleteByTargets(ctx, entity.TargetKindComment, commentIDs); err != nil {
			return errors.Wrap(err, "failed to delete comment likes")
		}
		if err := likeRepo.DeleteByTargets(ctx, entity.TargetKindVideo, []uuid.UUID{videoID}); err != nil {
			return errors.Wrap(err, "failed to delete video likes")
		}

		if err := f.NewPlaylistRepository().RemoveVideoEverywhere(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to remove video from playlists")
		}
		if err := f.NewWatchHistoryRepository().DeleteByVideo(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to delete watch history")
		}

		return f.NewVideoRepository().Delete(ctx, videoID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete video", slog.Any("videoID", videoID), slog.Any("error", err))

		return translate(err, "failed to execute video delete transaction", videoErrors)
	}

	discardMedia(ctx, srv.media, srv.log(ctx), video.VideoFile, video.Thumbnail)
	srv.publish(ctx, service.VideoEventDeleted, video)

	srv.log(ctx).Info("Video deleted", slog.Any("videoID", videoID))

	return nil
}

// TogglePublish flips the published flag for the owner and emits the matching
// published or unpublished event.
func (srv *videoService) TogglePublish(ctx context.Context, actor, videoID uuid.UUID) (*usecase.VideoView, error) {
	video, err := srv.ownedVideo(ctx, actor, videoID)
	if err != nil {
		return nil, err
	}

	if err := srv.videoRepo.SetPublished(ctx, videoID, !video.IsPublished); err != nil {
		return nil, translate(err, "failed to toggle publish status", videoErrors)
	}
	video.IsPublished = !video.IsPublished

	eventType := service.VideoEventUnpublished
	if video.IsPublished {
		eventType = service.VideoEventPublished
	}
	srv.publish(ctx, eventType, video)

	return srv.loadView(ctx, video)
}

// ownedVideo loads the video and rejects actors other than its owner.
func (srv *videoService) ownedVideo(ctx context.Context, actor, videoID uuid.UUID) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, translate(err, "failed to find video", videoErrors)
	}
	if !video.IsOwnedBy(actor) {
		srv.log(ctx).Warn("Video ownership violation", slog.Any("videoID", videoID), slog.Any("actor", actor))

		return nil, domainerrors.ErrVideoOwnershipViolation
	}

	return video, nil
}

// loadView joins owner and like count onto a single video.
func (srv *videoService) loadView(ctx context.Context, video *entity.Video) (*usecase.VideoView, error) {
	view, err := aggregate.Pipeline[videoRow, usecase.VideoView]{
		Filter: func(context.Context) ([]*videoRow, error) { return videoRows([]*entity.Video{video}), nil },
		Stages: videoJoins(srv.userRepo, srv.likeRepo),
		Shape:  shapeVideo,
	}.RunOne(ctx)
	if err != nil {
		return nil, aggregate.NotFoundOr(err, domainerrors.ErrVideoNotFound)
	}

	return &view, nil
}

// publish sends a lifecycle event. Failures are logged and never change the result.
func (srv *videoService) publish(ctx context.Context, eventType service.VideoEventType, video *entity.Video) {
	event := &service.VideoEvent{
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		VideoID:    video.ID.String(),
		OwnerID:    video.OwnerID.String(),
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishVideoEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish video event",
			slog.String("eventType", string(eventType)),
			slog.Any("videoID", video.ID),
			slog.Any("error", err),
		)
	}
}

func checkDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return domainerrors.ErrValidationFailed.WithDetails("description must be at most 1000 characters")
	}

	return nil
}
