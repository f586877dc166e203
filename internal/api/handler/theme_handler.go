package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/diary/internal/api/metrics"
	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

// ThemeHandler exposes the per-device light/dark preference.
type ThemeHandler struct {
	service ports.ThemeService
}

func NewThemeHandler(service ports.ThemeService) *ThemeHandler {
	return &ThemeHandler{service: service}
}

type themeResponse struct {
	Theme domain.Theme `json:"theme"`
}

// Get handles GET /theme.
//
// @Summary      Current theme of this device
// @Tags         theme
// @Produce      json
// @Param        Sec-CH-Prefers-Color-Scheme  header    string  false  "light or dark"
// @Success      200                          {object}  themeResponse
// @Router       /theme [get]
func (h *ThemeHandler) Get(c echo.Context) error {
	deviceID, err := ctxDeviceID(c)
	if err != nil {
		return err
	}

	theme, err := h.service.Resolve(c.Request().Context(), deviceID, ambientScheme(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: theme})
}

// Toggle handles POST /theme/toggle.
//
// @Summary      Switch between light and dark
// @Tags         theme
// @Produce      json
// @Success      200  {object}  themeResponse
// @Failure      500  {object}  map[string]string
// @Router       /theme/toggle [post]
func (h *ThemeHandler) Toggle(c echo.Context) error {
	deviceID, err := ctxDeviceID(c)
	if err != nil {
		return err
	}

	theme, err := h.service.Toggle(c.Request().Context(), deviceID, ambientScheme(c))
	if err != nil {
		return err
	}

	metrics.ThemeTogglesTotal.WithLabelValues(string(theme)).Inc()
	return c.JSON(http.StatusOK, themeResponse{Theme: theme})
}
