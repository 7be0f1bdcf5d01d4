package handler

import (
	"strconv"

	"vidtube/config"
	"vidtube/internal/delivery/api/response"
	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VideoHandlerParams holds dependencies for VideoHandler, injected by Fx.
type VideoHandlerParams struct {
	fx.In

	VideoUC usecase.VideoUsecase
	Cfg     *config.Config
}

type VideoHandler struct {
	videoUC usecase.VideoUsecase
	paging  *config.PaginationConfig
}

func NewVideoHandler(params VideoHandlerParams) *VideoHandler {
	return &VideoHandler{
		videoUC: params.VideoUC,
		paging:  params.Cfg.Pagination,
	}
}

type publishVideoRequest struct {
	Title       string `form:"title" validate:"notblank,max=200"`
	Description string `form:"description" validate:"notblank,max=5000"`
	Duration    string `form:"duration"`
}

type updateVideoRequest struct {
	Title       string `form:"title" json:"title" validate:"omitempty,notblank,max=200"`
	Description string `form:"description" json:"description" validate:"omitempty,notblank,max=5000"`
}

// ListVideos supports query, userId, page, limit, sortBy and sortType.
func (h *VideoHandler) ListVideos(c echo.Context) error {
	input := &usecase.ListVideosInput{
		ListOptions: listOptions(c, h.paging),
		Query:       c.QueryParam("query"),
	}
	if raw := c.QueryParam("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrInvalidID.WithDetails("userId must be a valid id")
		}
		input.UserID = &userID
	}

	page, err := h.videoUC.ListVideos(c.Request().Context(), deliverycontext.GetOptionalActorID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page, "Videos fetched successfully")
}

// PublishVideo accepts a multipart form with an mp4 videoFile and a jpeg or png thumbnail.
func (h *VideoHandler) PublishVideo(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req publishVideoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	files := newUploads(c)
	defer files.Close()

	videoFile, err := files.Video("videoFile", true)
	if err != nil {
		return err
	}
	thumbnail, err := files.Image("thumbnail", true)
	if err != nil {
		return err
	}

	input := &usecase.PublishVideoInput{
		Title:       req.Title,
		Description: req.Description,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	}
	if req.Duration != "" {
		duration, err := strconv.ParseFloat(req.Duration, 64)
		if err != nil || duration < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("duration must be a non-negative number")
		}
		input.Duration = duration
	}

	video, err := h.videoUC.PublishVideo(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, video, "Video published successfully")
}

func (h *VideoHandler) GetVideo(c echo.Context) error {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.videoUC.GetVideo(c.Request().Context(), deliverycontext.GetOptionalActorID(c), videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, video, "Video fetched successfully")
}

// UpdateVideo changes title, description and thumbnail. The thumbnail part is optional.
func (h *VideoHandler) UpdateVideo(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	var req updateVideoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	files := newUploads(c)
	defer files.Close()

	thumbnail, err := files.Image("thumbnail", false)
	if err != nil {
		return err
	}

	video, err := h.videoUC.UpdateVideo(c.Request().Context(), actor, videoID, &usecase.UpdateVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, video, "Video updated successfully")
}

func (h *VideoHandler) DeleteVideo(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	if err := h.videoUC.DeleteVideo(c.Request().Context(), actor, videoID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, struct{}{}, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.videoUC.TogglePublish(c.Request().Context(), actor, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, video, "Publish status toggled successfully")
}
