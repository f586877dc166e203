package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/diary/internal/core/ports"
)

// SessionCookieName holds the signed session token issued by /auth/callback.
const SessionCookieName = "diary_session"

// Session copies the caller's session token, if any, into the request
// context. It never rejects a request: the session guard in the services
// decides what an absent or invalid token means.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := sessionToken(c); token != "" {
				req := c.Request()
				c.SetRequest(req.WithContext(ports.WithSessionToken(req.Context(), token)))
			}
			return next(c)
		}
	}
}

// sessionToken prefers the bearer header over the cookie.
func sessionToken(c echo.Context) string {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
