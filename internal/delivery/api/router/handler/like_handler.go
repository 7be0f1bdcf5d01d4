package handler

import (
	"vidtube/config"
	"vidtube/internal/delivery/api/response"
	"vidtube/internal/domain/entity"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LikeHandlerParams holds dependencies for LikeHandler, injected by Fx.
type LikeHandlerParams struct {
	fx.In

	LikeUC usecase.LikeUsecase
	Cfg    *config.Config
}

type LikeHandler struct {
	likeUC usecase.LikeUsecase
	paging *config.PaginationConfig
}

func NewLikeHandler(params LikeHandlerParams) *LikeHandler {
	return &LikeHandler{
		likeUC: params.LikeUC,
		paging: params.Cfg.Pagination,
	}
}

type toggleLikeResult struct {
	Target  entity.TargetKind `json:"target"`
	ID      uuid.UUID         `json:"id"`
	IsLiked bool              `json:"isLiked"`
}

func (h *LikeHandler) ToggleVideoLike(c echo.Context) error {
	return h.toggle(c, "videoId", entity.VideoTarget)
}

func (h *LikeHandler) ToggleCommentLike(c echo.Context) error {
	return h.toggle(c, "commentId", entity.CommentTarget)
}

func (h *LikeHandler) ToggleTweetLike(c echo.Context) error {
	return h.toggle(c, "tweetId", entity.TweetTarget)
}

func (h *LikeHandler) toggle(c echo.Context, param string, target func(uuid.UUID) entity.LikeTarget) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, param)
	if err != nil {
		return err
	}

	t := target(id)
	state, err := h.likeUC.Toggle(c.Request().Context(), actor, t)
	if err != nil {
		return errors.WithStack(err)
	}

	result := toggleLikeResult{Target: t.Kind(), ID: id, IsLiked: state.Present()}
	message := "Like removed successfully"
	if result.IsLiked {
		message = "Liked successfully"
	}

	return response.OK(c, result, message)
}

func (h *LikeHandler) ListLikedVideos(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	page, err := h.likeUC.ListLikedVideos(c.Request().Context(), actor, listOptions(c, h.paging))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page, "Liked videos fetched successfully")
}
