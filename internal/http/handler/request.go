package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	apperrors "buildunion/pkg/errors"

	"github.com/labstack/echo/v4"
)

const contentTypeJSON = "application/json"

// JSON request bodies are parsed through a fixed 1 MiB bound. Multipart
// blueprint uploads never pass through here; those are capped by the
// server's configured upload limit.
const maxJSONBodyBytes int64 = 1 << 20

// bindStrictJSON decodes the request body into dst, rejecting unknown
// fields and trailing content. Failures surface as errors for the
// server's error handler to map; nothing is written here.
func bindStrictJSON(c echo.Context, dst interface{}) error {
	if !strings.HasPrefix(strings.ToLower(c.Request().Header.Get(echo.HeaderContentType)), contentTypeJSON) {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, msgContentTypeJSONRequired)
	}

	decoder := json.NewDecoder(io.LimitReader(c.Request().Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return apperrors.BadRequest(msgInvalidRequestBody)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return apperrors.BadRequest(msgInvalidRequestBody)
	}

	return nil
}
