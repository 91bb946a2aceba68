package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "buildunion/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	CustomHTTPErrorHandler(err, c)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorHandler_BadRequestUsesAppErrorMessage(t *testing.T) {
	code, body := handleError(t, apperrors.BadRequest("invalid request body"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid request body", body["error"])
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	code, body := handleError(t, echo.NewHTTPError(http.StatusUnsupportedMediaType, "Content-Type must be application/json"))

	assert.Equal(t, http.StatusUnsupportedMediaType, code)
	assert.Equal(t, "Content-Type must be application/json", body["error"])
}

func TestErrorHandler_EmailExistsIsConflict(t *testing.T) {
	code, body := handleError(t, apperrors.EmailExists())

	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "email already registered", body["error"])
}

func TestErrorHandler_NotFound(t *testing.T) {
	code, body := handleError(t, apperrors.NotFound("project not found"))

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "project not found", body["error"])
}

func TestErrorHandler_UnknownErrorIsMasked(t *testing.T) {
	code, body := handleError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotContains(t, body["error"], "pq:")
}
