package handler

import (
	"net/http"
	"strings"

	"buildunion/internal/auth"
	"buildunion/internal/service"
	"buildunion/pkg/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type BlueprintHandler struct {
	blueprints BlueprintService
}

func NewBlueprintHandler(blueprints BlueprintService) *BlueprintHandler {
	return &BlueprintHandler{blueprints: blueprints}
}

type SignedURLResponse struct {
	URL string `json:"url"`
}

// ListBlueprints serves authenticated and anonymous callers alike; without an
// identity the response is an empty list. An optional project_id query
// narrows the result to one project.
func (h *BlueprintHandler) ListBlueprints(c echo.Context) error {
	identity, _ := auth.CurrentIdentity(c)

	var projectID *uuid.UUID
	if raw := c.QueryParam(queryProjectID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
		}
		projectID = &id
	}

	blueprints, err := h.blueprints.List(c.Request().Context(), identity.UserID, projectID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, blueprints)
}

// UploadBlueprint accepts a multipart form with a "file" part and an optional
// "name" field; the name defaults to the uploaded file's name.
func (h *BlueprintHandler) UploadBlueprint(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return err
	}

	projectID, err := uuid.Parse(c.Param(paramProjectID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
	}

	fileHeader, err := c.FormFile(formFieldFile)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgMissingFile)
	}

	name := strings.TrimSpace(c.FormValue(formFieldName))
	if name == "" {
		name = fileHeader.Filename
	}
	if err := validator.BlueprintName(name); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.FileSize(fileHeader.Size); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	contentType, err := validator.SanitizeContentType(fileHeader.Header.Get(echo.HeaderContentType))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgMissingFile)
	}
	defer src.Close()

	b, err := h.blueprints.Upload(c.Request().Context(), service.UploadBlueprintInput{
		UserID:      userID,
		ProjectID:   projectID,
		Name:        name,
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Body:        src,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, b)
}

func (h *BlueprintHandler) DeleteBlueprint(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return err
	}

	blueprintID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidBlueprintID)
	}

	if err := h.blueprints.Delete(c.Request().Context(), userID, blueprintID); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, msgBlueprintDeleted)
}

func (h *BlueprintHandler) GetSignedURL(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return err
	}

	blueprintID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidBlueprintID)
	}

	url, err := h.blueprints.SignedURL(c.Request().Context(), userID, blueprintID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SignedURLResponse{URL: url})
}
