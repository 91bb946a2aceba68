package handler

import (
	"net/http"

	"buildunion/internal/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ActivityHandler struct {
	activity ActivityService
}

func NewActivityHandler(activity ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// ListActivity returns the caller's recent activity feed, empty for
// anonymous callers.
func (h *ActivityHandler) ListActivity(c echo.Context) error {
	identity, _ := auth.CurrentIdentity(c)

	var projectID *uuid.UUID
	if raw := c.QueryParam(queryProjectID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
		}
		projectID = &id
	}

	logs, err := h.activity.List(c.Request().Context(), identity.UserID, projectID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, logs)
}
