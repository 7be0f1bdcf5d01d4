package handler

import (
	"vidtube/config"
	"vidtube/internal/delivery/api/response"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TweetHandlerParams holds dependencies for TweetHandler, injected by Fx.
type TweetHandlerParams struct {
	fx.In

	TweetUC usecase.TweetUsecase
	Cfg     *config.Config
}

type TweetHandler struct {
	tweetUC usecase.TweetUsecase
	paging  *config.PaginationConfig
}

func NewTweetHandler(params TweetHandlerParams) *TweetHandler {
	return &TweetHandler{
		tweetUC: params.TweetUC,
		paging:  params.Cfg.Pagination,
	}
}

func (h *TweetHandler) CreateTweet(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req contentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tweet, err := h.tweetUC.CreateTweet(c.Request().Context(), actor, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, tweet, "Tweet created successfully")
}

func (h *TweetHandler) ListUserTweets(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	page, err := h.tweetUC.ListUserTweets(c.Request().Context(), userID, listOptions(c, h.paging))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page, "Tweets fetched successfully")
}

func (h *TweetHandler) UpdateTweet(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	tweetID, err := pathID(c, "tweetId")
	if err != nil {
		return err
	}

	var req contentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tweet, err := h.tweetUC.UpdateTweet(c.Request().Context(), actor, tweetID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, tweet, "Tweet updated successfully")
}

func (h *TweetHandler) DeleteTweet(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	tweetID, err := pathID(c, "tweetId")
	if err != nil {
		return err
	}

	if err := h.tweetUC.DeleteTweet(c.Request().Context(), actor, tweetID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, struct{}{}, "Tweet deleted successfully")
}
