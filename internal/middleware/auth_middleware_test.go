package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelfOrAdminContext(t *testing.T, userID uint, role, paramID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/users/:id")
	c.SetParamNames("id")
	c.SetParamValues(paramID)
	c.Set("user_id", userID)
	c.Set("role", role)

	return c, rec
}

func TestSelfOrAdminDeniesCrossUserUpdate(t *testing.T) {
	c, rec := newSelfOrAdminContext(t, 7, "ADVISOR", "9")

	nextCalled := false
	handler := SelfOrAdmin()(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)
	assert.Contains(t, rec.Body.String(), "your own data")
}

func TestSelfOrAdminAllowsOwnRecord(t *testing.T) {
	c, rec := newSelfOrAdminContext(t, 7, "ADVISOR", "7")

	nextCalled := false
	handler := SelfOrAdmin()(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
}

func TestSelfOrAdminAllowsAdminAnyRecord(t *testing.T) {
	c, rec := newSelfOrAdminContext(t, 7, "ADMIN", "9")

	nextCalled := false
	handler := SelfOrAdmin()(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
}

func TestSelfOrAdminRejectsUnauthenticatedContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/users/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")

	handler := SelfOrAdmin()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
