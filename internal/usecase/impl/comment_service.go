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

type commentService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
	userRepo    repository.UserRepository
	likeRepo    repository.LikeRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CommentRepo repository.CommentRepository
	VideoRepo   repository.VideoRepository
	UserRepo    repository.UserRepository
	LikeRepo    repository.LikeRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		videoRepo:   params.VideoRepo,
		userRepo:    params.UserRepo,
		likeRepo:    params.LikeRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

var commentErrors = map[error]error{
	repository.ErrCommentNotFound:  domainerrors.ErrCommentNotFound,
	repository.ErrDuplicateComment: domainerrors.ErrCommentAlreadyExists,
	repository.ErrVideoNotFound:    domainerrors.ErrVideoNotFound,
}

type commentRow struct {
	comment   *entity.Comment
	owner     entity.UserProfile
	likeCount int64
}

var commentSorts = aggregate.SortSpec[commentRow]{
	DefaultKey:       "createdAt",
	DefaultDirection: aggregate.Desc,
	Keys: map[string]func(a, b *commentRow) int{
		"createdAt": func(a, b *commentRow) int { return a.comment.CreatedAt.Compare(b.comment.CreatedAt) },
		"likeCount": func(a, b *commentRow) int { return cmp.Compare(a.likeCount, b.likeCount) },
	},
}

// commentPipeline embeds the author, dropping comments whose author no longer exists, and counts likes.
func (srv *commentService) commentPipeline(
	filter func(ctx context.Context) ([]*commentRow, error),
	sort *aggregate.Sort[commentRow],
) aggregate.Pipeline[commentRow, usecase.CommentView] {
	return aggregate.Pipeline[commentRow, usecase.CommentView]{
		Filter: filter,
		Stages: []aggregate.Stage[commentRow]{
			aggregate.EmbedRequired(
				func(row *commentRow) uuid.UUID { return row.comment.OwnerID },
				profileLookup(srv.userRepo),
				func(row *commentRow, owner entity.UserProfile) { row.owner = owner },
			),
			aggregate.Count(
				func(row *commentRow) uuid.UUID { return row.comment.ID },
				likeCounter(srv.likeRepo, entity.TargetKindComment),
				func(row *commentRow, n int64) { row.likeCount = n },
			),
		},
		Sort: sort,
		Shape: func(row *commentRow) usecase.CommentView {
			return usecase.CommentView{
				ID:        row.comment.ID,
				VideoID:   row.comment.VideoID,
				Content:   row.comment.Content,
				Owner:     row.owner,
				LikeCount: row.likeCount,
				CreatedAt: row.comment.CreatedAt,
				UpdatedAt: row.comment.UpdatedAt,
			}
		},
	}
}

// ListComments lists a video's comments. A draft's comments are visible to its owner only.
func (srv *commentService) ListComments(ctx context.Context, viewer *uuid.UUID, videoID uuid.UUID, opts usecase.ListOptions) (*pagination.Page[usecase.CommentView], error) {
	sort, err := commentSorts.Resolve(opts.SortBy, opts.SortType)
	if err != nil {
		return nil, err
	}

	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, translate(err, "failed to find video", commentErrors)
	}
	if !video.VisibleTo(viewer) {
		return nil, domainerrors.ErrVideoNotFound
	}

	views, err := srv.commentPipeline(func(ctx context.Context) ([]*commentRow, error) {
		comments, err := srv.commentRepo.ListByVideo(ctx, videoID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list comments")
		}

		rows := make([]*commentRow, 0, len(comments))
		for _, comment := range comments {
			rows = append(rows, &commentRow{comment: comment})
		}

		return rows, nil
	}, sort).Run(ctx)
	if err != nil {
		return nil, err
	}

	return paginate(views, opts, "comments"), nil
}

// AddComment stores the actor's only comment on the video.
func (srv *commentService) AddComment(ctx context.Context, actor, videoID uuid.UUID, content string) (*usecase.CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, translate(err, "failed to find video", commentErrors)
	}
	if !video.VisibleTo(&actor) {
		return nil, domainerrors.ErrVideoNotFound
	}

	comment := &entity.Comment{OwnerID: actor, VideoID: videoID, Content: content}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, translate(err, "failed to create comment", commentErrors)
	}

	return srv.loadView(ctx, comment)
}

func (srv *commentService) UpdateComment(ctx context.Context, actor, commentID uuid.UUID, content string) (*usecase.CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, translate(err, "failed to find comment", commentErrors)
	}
	if !comment.IsOwnedBy(actor) {
		srv.log(ctx).Warn("Comment ownership violation", slog.Any("commentID", commentID), slog.Any("actor", actor))

		return nil, domainerrors.ErrCommentOwnershipViolation
	}

	comment.Content = content
	if err := srv.commentRepo.UpdateContent(ctx, comment); err != nil {
		return nil, translate(err, "failed to update comment", commentErrors)
	}

	return srv.loadView(ctx, comment)
}

// DeleteComment removes the comment and its likes.
func (srv *commentService) DeleteComment(ctx context.Context, actor, commentID uuid.UUID) error {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return translate(err, "failed to find comment", commentErrors)
	}

	if !comment.IsOwnedBy(actor) {
		video, err := srv.videoRepo.FindByID(ctx, comment.VideoID)
		if err != nil && !errors.Is(err, repository.ErrVideoNotFound) {
			return errors.Wrap(err, "failed to find commented video")
		}
		if video == nil || !video.IsOwnedBy(actor) {
			srv.log(ctx).Warn("Comment ownership violation", slog.Any("commentID", commentID), slog.Any("actor", actor))

			return domainerrors.ErrCommentOwnershipViolation
		}
	}

	err = srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewLikeRepository().DeleteByTargets(ctx, entity.TargetKindComment, []uuid.UUID{commentID}); err != nil {
			return errors.Wrap(err, "failed to delete comment likes")
		}

		return f.NewCommentRepository().Delete(ctx, commentID)
	})
	if err != nil {
		return translate(err, "failed to delete comment", commentErrors)
	}

	return nil
}

func (srv *commentService) loadView(ctx context.Context, comment *entity.Comment) (*usecase.CommentView, error) {
	view, err := srv.commentPipeline(func(context.Context) ([]*commentRow, error) {
		return []*commentRow{{comment: comment}}, nil
	}, nil).RunOne(ctx)
	if err != nil {
		return nil, aggregate.NotFoundOr(err, domainerrors.ErrCommentNotFound)
	}

	return &view, nil
}
