package impl

import (
	"context"
	"log/slog"

	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	"vidtube/internal/pagination"
	"vidtube/internal/usecase"
	"vidtube/internal/usecase/aggregate"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type dashboardService struct {
	videoRepo        repository.VideoRepository
	userRepo         repository.UserRepository
	likeRepo         repository.LikeRepository
	subscriptionRepo repository.SubscriptionRepository
	logger           *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	VideoRepo        repository.VideoRepository
	UserRepo         repository.UserRepository
	LikeRepo         repository.LikeRepository
	SubscriptionRepo repository.SubscriptionRepository
	Logger           *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		videoRepo:        params.VideoRepo,
		userRepo:         params.UserRepo,
		likeRepo:         params.LikeRepo,
		subscriptionRepo: params.SubscriptionRepo,
		logger:           params.Logger,
	}
}

func (srv *dashboardService) GetChannelStats(ctx context.Context, actor uuid.UUID) (*usecase.ChannelStats, error) {
	views, err := srv.videoRepo.SumViewsByOwner(ctx, actor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum channel views")
	}

	videos, err := srv.videoRepo.CountByOwner(ctx, actor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count channel videos")
	}

	subscribers, err := srv.subscriptionRepo.CountByChannels(ctx, []uuid.UUID{actor})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count channel subscribers")
	}

	likes, err := srv.likeRepo.CountOnOwnerVideos(ctx, actor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count channel likes")
	}

	return &usecase.ChannelStats{
		TotalVideoViews:  views,
		TotalSubscribers: subscribers[actor],
		TotalVideos:      videos,
		TotalLikes:       likes,
	}, nil
}

var channelVideoSorts = videoSortSpec("createdAt", nil)

// ListChannelVideos lists every video of the actor, drafts included.
func (srv *dashboardService) ListChannelVideos(ctx context.Context, actor uuid.UUID, opts usecase.ListOptions) (*pagination.Page[usecase.VideoView], error) {
	sort, err := channelVideoSorts.Resolve(opts.SortBy, opts.SortType)
	if err != nil {
		return nil, err
	}

	views, err := aggregate.Pipeline[videoRow, usecase.VideoView]{
		Filter: func(ctx context.Context) ([]*videoRow, error) {
			videos, err := srv.videoRepo.List(ctx, repository.VideoFilter{OwnerID: &actor})
			if err != nil {
				return nil, errors.Wrap(err, "failed to list channel videos")
			}

			return videoRows(videos), nil
		},
		Stages: videoJoins(srv.userRepo, srv.likeRepo),
		Sort:   sort,
		Shape:  shapeVideo,
	}.Run(ctx)
	if err != nil {
		return nil, err
	}

	return paginate(views, opts, "videos"), nil
}
