package handler

import (
	"vidtube/config"
	"vidtube/internal/delivery/api/response"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Cfg         *config.Config
}

type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	paging      *config.PaginationConfig
}

func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		paging:      params.Cfg.Pagination,
	}
}

func (h *DashboardHandler) GetChannelStats(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	stats, err := h.dashboardUC.GetChannelStats(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, stats, "Channel stats fetched successfully")
}

// ListChannelVideos lists the actor's videos, drafts included.
func (h *DashboardHandler) ListChannelVideos(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	page, err := h.dashboardUC.ListChannelVideos(c.Request().Context(), actor, listOptions(c, h.paging))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page, "Channel videos fetched successfully")
}
