package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/diary/internal/api/middleware"
)

// colorSchemeHeader carries the browser's prefers-color-scheme hint.
const colorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

// ctxDeviceID returns the device ID injected by the Device middleware. An
// empty value means the middleware did not run for this route.
func ctxDeviceID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.DeviceIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing device identity")
	}
	return id, nil
}

func ambientScheme(c echo.Context) string {
	return c.Request().Header.Get(colorSchemeHeader)
}
