package middleware // reusable HTTP middleware for the reservation API

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/higholive/party-api/internal/utils"
)

// AdminCookieName is the cookie the admin token travels in. It is set
// HttpOnly and SameSite=Strict by the login handler.
const AdminCookieName = "admin_token"

// AdminAuth returns an echo middleware that gates the admin endpoints on
// the signed token cookie. A missing cookie yields 401; a cookie that does
// not validate (bad signature, wrong claims, expired) yields 403. The
// distinction exists only so the UI can word the message, both deny access.
func AdminAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AdminCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"message": "Authentification requise.",
				})
			}
			if err := utils.ParseAdminToken(secret, cookie.Value); err != nil {
				msg := "Session invalide."
				if errors.Is(err, jwt.ErrTokenExpired) {
					msg = "Session expirée. Veuillez vous reconnecter."
				}
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false,
					"message": msg,
				})
			}
			return next(c)
		}
	}
}
