package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// DeviceCookieName identifies a client device across visits.
	DeviceCookieName = "diary_device"
	// DeviceIDKey is the echo context key holding the device ID.
	DeviceIDKey = "device_id"

	deviceCookieMaxAge = 365 * 24 * time.Hour
)

// Device makes sure every request carries a device ID, issuing a new
// cookie when the client has none or sends a malformed one.
func Device(secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(DeviceCookieName); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					id = parsed.String()
				}
			}

			if id == "" {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     DeviceCookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   int(deviceCookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(DeviceIDKey, id)
			return next(c)
		}
	}
}
