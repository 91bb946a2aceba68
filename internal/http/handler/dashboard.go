package handler

import (
	"net/http"

	"buildunion/internal/auth"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	dashboard DashboardService
}

func NewDashboardHandler(dashboard DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboard.Summary(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summary)
}
