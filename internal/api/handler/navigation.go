package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	PathHome      = "/"
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
)

func entryPath(id string) string  { return "/diary/" + id }
func editPath(id string) string   { return "/edit/" + id }
func deletePath(id string) string { return entryPath(id) + "/delete" }

// navigationResponse is the body of every 303 answer. Redirect mirrors the
// Location header for clients that do not follow redirects.
type navigationResponse struct {
	Redirect string `json:"redirect"`
	EntryID  string `json:"entry_id,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Redirect answers 303 See Other towards to.
func Redirect(c echo.Context, to string) error {
	return redirectWith(c, navigationResponse{Redirect: to})
}

func redirectWith(c echo.Context, nav navigationResponse) error {
	c.Response().Header().Set(echo.HeaderLocation, nav.Redirect)
	return c.JSON(http.StatusSeeOther, nav)
}
