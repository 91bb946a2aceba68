package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyRequestID(t *testing.T, incoming string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return c, rec
}

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	c, rec := applyRequestID(t, "")

	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, GetRequestID(c))
}

func TestRequestID_ValidIncomingIDKept(t *testing.T) {
	incoming := uuid.New().String()
	c, rec := applyRequestID(t, incoming)

	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, incoming, GetRequestID(c))
}

func TestRequestID_MalformedIncomingIDReplaced(t *testing.T) {
	c, rec := applyRequestID(t, "not-a-uuid\ninjected=line")

	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotContains(t, id, "injected")
	assert.Equal(t, id, GetRequestID(c))
}
