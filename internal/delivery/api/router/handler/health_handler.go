package handler

import (
	"vidtube/internal/delivery/api/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type HealthHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
}

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{healthUC: params.HealthUC}
}

// HealthCheck always answers 200; the database state is part of the report.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.OK(c, h.healthUC.Check(c.Request().Context()), "Health check passed")
}
