package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"tienda/internal/config"
	"tienda/internal/middleware"
)

func testConfig() config.Config {
	return config.Config{JWTSecret: "test-secret"}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func validClaims(customerID int64, staff bool) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":   customerID,
		"staff": staff,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
}

func runWith(mw echo.MiddlewareFunc, authz string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)
	return rec, c
}

func TestAuthJWTAcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	token := signToken(t, cfg.JWTSecret, validClaims(7, false))

	rec, c := runWith(middleware.AuthJWT(cfg), "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), middleware.CustomerID(c))
	assert.False(t, middleware.IsStaff(c))
}

func TestAuthJWTReadsStaffClaim(t *testing.T) {
	cfg := testConfig()
	token := signToken(t, cfg.JWTSecret, validClaims(7, true))

	rec, c := runWith(middleware.AuthJWT(cfg), "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, middleware.IsStaff(c))
}

func TestAuthJWTRejectsMissingHeader(t *testing.T) {
	rec, _ := runWith(middleware.AuthJWT(testConfig()), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWTRejectsWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", validClaims(7, false))

	rec, _ := runWith(middleware.AuthJWT(testConfig()), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWTRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	claims := validClaims(7, false)
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	token := signToken(t, cfg.JWTSecret, claims)

	rec, _ := runWith(middleware.AuthJWT(cfg), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWTOptionalAllowsAnonymous(t *testing.T) {
	rec, c := runWith(middleware.AuthJWTOptional(testConfig()), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), middleware.CustomerID(c))
}

func TestAuthJWTOptionalStillRejectsBadToken(t *testing.T) {
	rec, _ := runWith(middleware.AuthJWTOptional(testConfig()), "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStaffGuard(t *testing.T) {
	cfg := testConfig()

	customerToken := signToken(t, cfg.JWTSecret, validClaims(7, false))
	staffToken := signToken(t, cfg.JWTSecret, validClaims(8, true))

	chain := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	handler := middleware.AuthJWT(cfg)(middleware.StaffGuard()(chain))

	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	rec := httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	rec = httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
