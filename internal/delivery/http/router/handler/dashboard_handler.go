package handler

import (
	"log/slog"
	"net/http"

	"subhub/internal/delivery/http/response"
	"subhub/internal/domain/entity"
	"subhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the dashboard aggregation endpoint.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetStats handles the dashboard summary request. ?timeframe= narrows the
// aggregation window and defaults to all subscriptions.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	timeFrame := entity.TimeFrame(c.QueryParam("timeframe"))
	if timeFrame == "" {
		timeFrame = entity.TimeFrameAll
	}

	summary, err := h.uc.GetStats(c.Request().Context(), timeFrame)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Dashboard stats retrieved successfully")
}
