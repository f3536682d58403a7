package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"tienda/internal/middleware"
)

func TestCartIdentityUsesCustomerID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxCustomerIDKey, int64(7))

	handler := middleware.CartIdentity()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	assert.Equal(t, "user:7", middleware.Identity(c))
}

func TestCartIdentityMintsGuestCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := middleware.CartIdentity()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))

	identity := middleware.Identity(c)
	assert.True(t, strings.HasPrefix(identity, "guest:"))
	_, err := uuid.Parse(strings.TrimPrefix(identity, "guest:"))
	assert.NoError(t, err)

	// The uuid was handed back as a cookie for the next request.
	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, strings.TrimPrefix(identity, "guest:"), cookies[0].Value)
}

func TestCartIdentityReusesGuestCookie(t *testing.T) {
	guestID := uuid.NewString()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "carrito_id", Value: guestID})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := middleware.CartIdentity()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	assert.Equal(t, "guest:"+guestID, middleware.Identity(c))
}

func TestCartIdentityRejectsForgedCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "carrito_id", Value: "../../etc/passwd"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := middleware.CartIdentity()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
