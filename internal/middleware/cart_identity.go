package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CtxCartIdentityKey = "cart_identity" // string
	guestCookieName    = "carrito_id"
)

// CartIdentity resolves who the cart belongs to. An authenticated request
// maps to "user:<id>"; an anonymous one gets a "guest:<uuid>" identity backed
// by a cookie, minted on first contact. An authenticated customer's cart id
// never depends on the cookie, so logging in switches carts instead of
// merging them.
func CartIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id := CustomerID(c); id > 0 {
				c.Set(CtxCartIdentityKey, fmt.Sprintf("user:%d", id))
				return next(c)
			}

			cookie, err := c.Cookie(guestCookieName)
			if err != nil || cookie.Value == "" {
				guestID := uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     guestCookieName,
					Value:    guestID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(72 * time.Hour),
				})
				c.Set(CtxCartIdentityKey, "guest:"+guestID)
				return next(c)
			}

			if _, err := uuid.Parse(cookie.Value); err != nil {
				return c.JSON(http.StatusBadRequest, errorJSON("invalid cart cookie"))
			}
			c.Set(CtxCartIdentityKey, "guest:"+cookie.Value)
			return next(c)
		}
	}
}

// Identity returns the cart identity set by CartIdentity.
func Identity(c echo.Context) string {
	id, _ := c.Get(CtxCartIdentityKey).(string)
	return id
}

// GuestIdentity returns the cookie-backed guest identity even when the
// request is authenticated, for discarding the guest cart on login.
func GuestIdentity(c echo.Context) string {
	cookie, err := c.Cookie(guestCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return ""
	}
	return "guest:" + cookie.Value
}
