package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"tienda/internal/config"
)

const (
	CtxCustomerIDKey = "customer_id" // int64
	CtxIsStaffKey    = "is_staff"    // bool
)

// AuthJWT requires a valid bearer token and stores the customer id and the
// staff flag in the echo context.
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			customerID, isStaff, err := parseBearer(c, cfg)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			c.Set(CtxCustomerIDKey, customerID)
			c.Set(CtxIsStaffKey, isStaff)
			return next(c)
		}
	}
}

// AuthJWTOptional parses the token when present but lets anonymous requests
// through. Cart and checkout serve guests too.
func AuthJWTOptional(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}
			customerID, isStaff, err := parseBearer(c, cfg)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			c.Set(CtxCustomerIDKey, customerID)
			c.Set(CtxIsStaffKey, isStaff)
			return next(c)
		}
	}
}

func parseBearer(c echo.Context, cfg config.Config) (int64, bool, error) {
	authz := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return 0, false, errors.New("malformed authorization header")
	}
	rawToken := strings.TrimSpace(parts[1])
	if rawToken == "" {
		return 0, false, errors.New("empty token")
	}

	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return 0, false, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false, errors.New("invalid claims")
	}

	customerID, err := parseCustomerID(claims["sub"])
	if err != nil || customerID <= 0 {
		return 0, false, errors.New("invalid sub")
	}
	isStaff, _ := claims["staff"].(bool)

	return customerID, isStaff, nil
}

// CustomerID returns the authenticated customer id, or 0 for anonymous.
func CustomerID(c echo.Context) int64 {
	id, _ := c.Get(CtxCustomerIDKey).(int64)
	return id
}

func IsStaff(c echo.Context) bool {
	staff, _ := c.Get(CtxIsStaffKey).(bool)
	return staff
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

func parseCustomerID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid sub")
	}
}
