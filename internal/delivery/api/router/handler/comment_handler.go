package handler

import (
	"vidtube/config"
	"vidtube/internal/delivery/api/response"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Cfg       *config.Config
}

type CommentHandler struct {
	commentUC usecase.CommentUsecase
	paging    *config.PaginationConfig
}

func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		paging:    params.Cfg.Pagination,
	}
}

// contentRequest is the body of comment and tweet writes.
type contentRequest struct {
	Content string `json:"content" form:"content" validate:"notblank,max=1000"`
}

func (h *CommentHandler) ListComments(c echo.Context) error {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	page, err := h.commentUC.ListComments(c.Request().Context(), deliverycontext.GetOptionalActorID(c), videoID, listOptions(c, h.paging))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page, "Comments fetched successfully")
}

func (h *CommentHandler) AddComment(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	var req contentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.commentUC.AddComment(c.Request().Context(), actor, videoID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, comment, "Comment added successfully")
}

func (h *CommentHandler) UpdateComment(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return err
	}

	var req contentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.commentUC.UpdateComment(c.Request().Context(), actor, commentID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, comment, "Comment updated successfully")
}

func (h *CommentHandler) DeleteComment(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.commentUC.DeleteComment(c.Request().Context(), actor, commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, struct{}{}, "Comment deleted successfully")
}
