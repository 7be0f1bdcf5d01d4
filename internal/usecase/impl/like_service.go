package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	"vidtube/internal/pagination"
	"vidtube/internal/usecase"
	"vidtube/internal/usecase/aggregate"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type likeService struct {
	likeRepo    repository.LikeRepository
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	tweetRepo   repository.TweetRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// LikeServiceParams holds dependencies for LikeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	LikeRepo    repository.LikeRepository
	VideoRepo   repository.VideoRepository
	CommentRepo repository.CommentRepository
	TweetRepo   repository.TweetRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		likeRepo:    params.LikeRepo,
		videoRepo:   params.VideoRepo,
		commentRepo: params.CommentRepo,
		tweetRepo:   params.TweetRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle deletes an existing like or inserts a new one.
// An insert that loses the race on the unique index reports the like as present.
func (srv *likeService) Toggle(ctx context.Context, actor uuid.UUID, target entity.LikeTarget) (entity.ReactionState, error) {
	if err := srv.resolveTarget(ctx, actor, target); err != nil {
		return "", err
	}

	existing, err := srv.likeRepo.Find(ctx, actor, target)
	switch {
	case err == nil:
		if err := srv.likeRepo.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrLikeNotFound) {
			return "", errors.Wrap(err, "failed to remove like")
		}

		return entity.ReactionAbsent, nil
	case !errors.Is(err, repository.ErrLikeNotFound):
		return "", errors.Wrap(err, "failed to find like")
	}

	like := &entity.Like{LikedBy: actor, Target: target}
	if err := srv.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrDuplicateLike) {
			srv.log(ctx).Debug("Like inserted concurrently", slog.String("kind", string(target.Kind())), slog.Any("targetID", target.ID()))

			return entity.ReactionPresent, nil
		}

		return "", errors.Wrap(err, "failed to add like")
	}

	return entity.ReactionPresent, nil
}

// resolveTarget checks the target exists and, for videos, that the actor may see it.
func (srv *likeService) resolveTarget(ctx context.Context, actor uuid.UUID, target entity.LikeTarget) error {
	var err error

	switch target.Kind() {
	case entity.TargetKindVideo:
		var video *entity.Video
		if video, err = srv.videoRepo.FindByID(ctx, target.ID()); err == nil && !video.VisibleTo(&actor) {
			return domainerrors.ErrVideoNotFound
		}
	case entity.TargetKindComment:
		_, err = srv.commentRepo.FindByID(ctx, target.ID())
	case entity.TargetKindTweet:
		_, err = srv.tweetRepo.FindByID(ctx, target.ID())
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown like target")
	}

	if err != nil {
		return translate(err, "failed to resolve like target", map[error]error{
			repository.ErrVideoNotFound:   domainerrors.ErrVideoNotFound,
			repository.ErrCommentNotFound: domainerrors.ErrCommentNotFound,
			repository.ErrTweetNotFound:   domainerrors.ErrTweetNotFound,
		})
	}

	return nil
}

var likedVideoSorts = videoSortSpec("likedAt", map[string]func(a, b *videoRow) int{
	"likedAt": compareAt,
})

// ListLikedVideos lists the videos the actor liked, newest like first.
func (srv *likeService) ListLikedVideos(ctx context.Context, actor uuid.UUID, opts usecase.ListOptions) (*pagination.Page[usecase.LikedVideoView], error) {
	sort, err := likedVideoSorts.Resolve(opts.SortBy, opts.SortType)
	if err != nil {
		return nil, err
	}

	pipeline := aggregate.Pipeline[videoRow, usecase.LikedVideoView]{
		Filter: func(ctx context.Context) ([]*videoRow, error) {
			likes, err := srv.likeRepo.ListByUser(ctx, actor, entity.TargetKindVideo)
			if err != nil {
				return nil, errors.Wrap(err, "failed to list liked videos")
			}

			return srv.likedRows(ctx, likes)
		},
		Stages: append(
			[]aggregate.Stage[videoRow]{aggregate.Where(func(row *videoRow) bool { return row.video.VisibleTo(&actor) })},
			videoJoins(srv.userRepo, srv.likeRepo)...,
		),
		Sort: sort,
		Shape: func(row *videoRow) usecase.LikedVideoView {
			return usecase.LikedVideoView{VideoView: shapeVideo(row), LikedAt: row.at}
		},
	}

	views, err := pipeline.Run(ctx)
	if err != nil {
		return nil, err
	}

	return paginate(views, opts, "videos"), nil
}

func (srv *likeService) likedRows(ctx context.Context, likes []*entity.Like) ([]*videoRow, error) {
	ids := make([]uuid.UUID, 0, len(likes))
	for _, like := range likes {
		ids = append(ids, like.Target.ID())
	}

	videos, err := srv.videoRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load liked videos")
	}

	byID := make(map[uuid.UUID]*entity.Video, len(videos))
	for _, video := range videos {
		byID[video.ID] = video
	}

	rows := make([]*videoRow, 0, len(likes))
	for _, like := range likes {
		if video, ok := byID[like.Target.ID()]; ok {
			rows = append(rows, &videoRow{video: video, at: like.CreatedAt})
		}
	}

	return rows, nil
}
