package impl

import (
	"cmp"
	"context"
	"log/slog"
	"strings"

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

type tweetService struct {
	txManager repository.TransactionManager
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
	likeRepo  repository.LikeRepository
	logger    *slog.Logger
}

// TweetServiceParams holds dependencies for TweetService, injected by Fx.
type TweetServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TweetRepo repository.TweetRepository
	UserRepo  repository.UserRepository
	LikeRepo  repository.LikeRepository
	Logger    *slog.Logger
}

// NewTweetService is the constructor for tweetService.
func NewTweetService(params TweetServiceParams) usecase.TweetUsecase {
	return &tweetService{
		txManager: params.TxManager,
		tweetRepo: params.TweetRepo,
		userRepo:  params.UserRepo,
		likeRepo:  params.LikeRepo,
		logger:    params.Logger,
	}
}

func (srv *tweetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

var tweetErrors = map[error]error{
	repository.ErrTweetNotFound: domainerrors.ErrTweetNotFound,
	repository.ErrUserNotFound:  domainerrors.ErrUserNotFound,
}

type tweetRow struct {
	tweet      *entity.Tweet
	totalLikes int64
}

var tweetSorts = aggregate.SortSpec[tweetRow]{
	DefaultKey:       "createdAt",
	DefaultDirection: aggregate.Desc,
	Keys: map[string]func(a, b *tweetRow) int{
		"createdAt":  func(a, b *tweetRow) int { return a.tweet.CreatedAt.Compare(b.tweet.CreatedAt) },
		"totalLikes": func(a, b *tweetRow) int { return cmp.Compare(a.totalLikes, b.totalLikes) },
	},
}

func (srv *tweetService) tweetPipeline(tweets []*entity.Tweet, sort *aggregate.Sort[tweetRow]) aggregate.Pipeline[tweetRow, usecase.TweetView] {
	return aggregate.Pipeline[tweetRow, usecase.TweetView]{
		Filter: func(context.Context) ([]*tweetRow, error) {
			rows := make([]*tweetRow, 0, len(tweets))
			for _, tweet := range tweets {
				rows = append(rows, &tweetRow{tweet: tweet})
			}

			return rows, nil
		},
		Stages: []aggregate.Stage[tweetRow]{
			aggregate.Count(
				func(row *tweetRow) uuid.UUID { return row.tweet.ID },
				likeCounter(srv.likeRepo, entity.TargetKindTweet),
				func(row *tweetRow, n int64) { row.totalLikes = n },
			),
		},
		Sort: sort,
		Shape: func(row *tweetRow) usecase.TweetView {
			return usecase.TweetView{
				ID:         row.tweet.ID,
				OwnerID:    row.tweet.OwnerID,
				Content:    row.tweet.Content,
				TotalLikes: row.totalLikes,
				CreatedAt:  row.tweet.CreatedAt,
				UpdatedAt:  row.tweet.UpdatedAt,
			}
		},
	}
}

func (srv *tweetService) CreateTweet(ctx context.Context, actor uuid.UUID, content string) (*usecase.TweetView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	tweet := &entity.Tweet{OwnerID: actor, Content: content}
	if err := srv.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, translate(err, "failed to create tweet", tweetErrors)
	}

	return &usecase.TweetView{
		ID:        tweet.ID,
		OwnerID:   tweet.OwnerID,
		Content:   tweet.Content,
		CreatedAt: tweet.CreatedAt,
		UpdatedAt: tweet.UpdatedAt,
	}, nil
}

func (srv *tweetService) ListUserTweets(ctx context.Context, userID uuid.UUID, opts usecase.ListOptions) (*pagination.Page[usecase.TweetView], error) {
	sort, err := tweetSorts.Resolve(opts.SortBy, opts.SortType)
	if err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, translate(err, "failed to find user", tweetErrors)
	}

	tweets, err := srv.tweetRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tweets")
	}

	views, err := srv.tweetPipeline(tweets, sort).Run(ctx)
	if err != nil {
		return nil, err
	}

	return paginate(views, opts, "tweets"), nil
}

func (srv *tweetService) UpdateTweet(ctx context.Context, actor, tweetID uuid.UUID, content string) (*usecase.TweetView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	tweet, err := srv.ownedTweet(ctx, actor, tweetID)
	if err != nil {
		return nil, err
	}

	tweet.Content = content
	if err := srv.tweetRepo.UpdateContent(ctx, tweet); err != nil {
		return nil, translate(err, "failed to update tweet", tweetErrors)
	}

	view, err := srv.tweetPipeline([]*entity.Tweet{tweet}, nil).RunOne(ctx)
	if err != nil {
		return nil, aggregate.NotFoundOr(err, domainerrors.ErrTweetNotFound)
	}

	return &view, nil
}

// DeleteTweet removes the tweet together with its likes.
func (srv *tweetService) DeleteTweet(ctx context.Context, actor, tweetID uuid.UUID) error {
	if _, err := srv.ownedTweet(ctx, actor, tweetID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewLikeRepository().DeleteByTargets(ctx, entity.TargetKindTweet, []uuid.UUID{tweetID}); err != nil {
			return errors.Wrap(err, "failed to delete tweet likes")
		}

		return f.NewTweetRepository().Delete(ctx, tweetID)
	})
	if err != nil {
		return translate(err, "failed to delete tweet", tweetErrors)
	}

	return nil
}

func (srv *tweetService) ownedTweet(ctx context.Context, actor, tweetID uuid.UUID) (*entity.Tweet, error) {
	tweet, err := srv.tweetRepo.FindByID(ctx, tweetID)
	if err != nil {
		return nil, translate(err, "failed to find tweet", tweetErrors)
	}
	if !tweet.IsOwnedBy(actor) {
		srv.log(ctx).Warn("Tweet ownership violation", slog.Any("tweetID", tweetID), slog.Any("actor", actor))

		return nil, domainerrors.ErrTweetOwnershipViolation
	}

	return tweet, nil
}
