package handler

import (
	"context"

	"vidtube/config"
	"vidtube/internal/delivery/api/response"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaylistHandlerParams holds dependencies for PlaylistHandler, injected by Fx.
type PlaylistHandlerParams struct {
	fx.In

	PlaylistUC usecase.PlaylistUsecase
	Cfg        *config.Config
}

type PlaylistHandler struct {
	playlistUC usecase.PlaylistUsecase
	paging     *config.PaginationConfig
}

func NewPlaylistHandler(params PlaylistHandlerParams) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUC: params.PlaylistUC,
		paging:     params.Cfg.Pagination,
	}
}

type createPlaylistRequest struct {
	Name        string `json:"name" validate:"notblank,max=120"`
	Description string `json:"description" validate:"notblank,max=1000"`
}

type updatePlaylistRequest struct {
	Name        string `json:"name" validate:"omitempty,notblank,max=120"`
	Description string `json:"description" validate:"omitempty,notblank,max=1000"`
}

func (h *PlaylistHandler) CreatePlaylist(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req createPlaylistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	playlist, err := h.playlistUC.CreatePlaylist(c.Request().Context(), actor, &usecase.PlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, playlist, "Playlist created successfully")
}

func (h *PlaylistHandler) GetPlaylist(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		return err
	}

	playlist, err := h.playlistUC.GetPlaylist(c.Request().Context(), actor, playlistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, playlist, "Playlist fetched successfully")
}

func (h *PlaylistHandler) UpdatePlaylist(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		return err
	}

	var req updatePlaylistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	playlist, err := h.playlistUC.UpdatePlaylist(c.Request().Context(), actor, playlistID, &usecase.PlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, playlist, "Playlist updated successfully")
}

func (h *PlaylistHandler) DeletePlaylist(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		return err
	}

	if err := h.playlistUC.DeletePlaylist(c.Request().Context(), actor, playlistID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, struct{}{}, "Playlist deleted successfully")
}

func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	return h.changeEntries(c, h.playlistUC.AddVideo, "Video added to playlist successfully")
}

func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	return h.changeEntries(c, h.playlistUC.RemoveVideo, "Video removed from playlist successfully")
}

type entryChange func(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*usecase.PlaylistView, error)

// changeEntries serves /playlists/{add,remove}/:videoId/:playlistId.
func (h *PlaylistHandler) changeEntries(c echo.Context, change entryChange, message string) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		return err
	}

	playlist, err := change(c.Request().Context(), actor, playlistID, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, playlist, message)
}

func (h *PlaylistHandler) ListUserPlaylists(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	page, err := h.playlistUC.ListUserPlaylists(c.Request().Context(), actor, userID, listOptions(c, h.paging))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page, "Playlists fetched successfully")
}
