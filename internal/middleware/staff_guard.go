package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StaffGuard rejects non-staff customers. Runs after AuthJWT.
func StaffGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CustomerID(c) <= 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			if !IsStaff(c) {
				return c.JSON(http.StatusForbidden, errorJSON("solo personal autorizado"))
			}
			return next(c)
		}
	}
}
