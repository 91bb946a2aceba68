package handler

import (
	"net/http"
	"strings"
	"time"

	"buildunion/internal/auth"
	"buildunion/internal/domain/project"
	"buildunion/pkg/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

type ProjectHandler struct {
	projects ProjectService
}

func NewProjectHandler(projects ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type CreateProjectRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	Location    *string  `json:"location"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Budget      *float64 `json:"budget"`
}

type UpdateProjectRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	Location    *string  `json:"location"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Budget      *float64 `json:"budget"`
}

// ListProjects serves authenticated and anonymous callers alike; without an
// identity the response is an empty list.
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	identity, _ := auth.CurrentIdentity(c)

	projects, err := h.projects.List(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return err
	}

	projectID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
	}

	proj, err := h.projects.Get(c.Request().Context(), userID, projectID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, proj)
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return err
	}

	var req CreateProjectRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}
	req.Name = strings.TrimSpace(req.Name)

	input := project.CreateProjectInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Budget:      req.Budget,
	}

	if err := validator.ProjectName(req.Name); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if req.Description != nil {
		if err := validator.Description(*req.Description); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
	}
	if req.Location != nil {
		if err := validator.Location(*req.Location); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
	}
	if req.Budget != nil {
		if err := validator.Budget(*req.Budget); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
	}

	if req.Status != nil {
		status := project.Status(*req.Status)
		if err := status.Validate(); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		input.Status = status
	}

	input.StartDate, err = parseDate(req.StartDate)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	input.EndDate, err = parseDate(req.EndDate)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.DateRange(input.StartDate, input.EndDate); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	proj, err := h.projects.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, proj)
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return err
	}

	projectID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
	}

	var req UpdateProjectRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	input := project.UpdateProjectInput{
		Description: req.Description,
		Location:    req.Location,
		Budget:      req.Budget,
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validator.ProjectName(name); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		input.Name = &name
	}
	if req.Description != nil {
		if err := validator.Description(*req.Description); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
	}
	if req.Location != nil {
		if err := validator.Location(*req.Location); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
	}
	if req.Budget != nil {
		if err := validator.Budget(*req.Budget); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
	}
	if req.Status != nil {
		status := project.Status(*req.Status)
		if err := status.Validate(); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		input.Status = &status
	}

	input.StartDate, err = parseDate(req.StartDate)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	input.EndDate, err = parseDate(req.EndDate)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.DateRange(input.StartDate, input.EndDate); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	// An empty patch would only bump updated_at while still producing
	// activity and a success toast, so reject it up front.
	if input.IsZero() {
		return respondError(c, http.StatusBadRequest, msgEmptyUpdate)
	}

	proj, err := h.projects.Update(c.Request().Context(), userID, projectID, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, proj)
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return err
	}

	projectID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
	}

	if err := h.projects.Delete(c.Request().Context(), userID, projectID); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, msgProjectDeleted)
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
