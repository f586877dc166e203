package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

// ViewHandler serves the pages that do not require a session. The navbar
// still shows the signed-in email when a session happens to exist.
type ViewHandler struct {
	sessions ports.SessionProvider
}

func NewViewHandler(sessions ports.SessionProvider) *ViewHandler {
	return &ViewHandler{sessions: sessions}
}

type pageLinks struct {
	Login     string `json:"login,omitempty"`
	Signup    string `json:"signup,omitempty"`
	Dashboard string `json:"dashboard,omitempty"`
	Logout    string `json:"logout,omitempty"`
}

type homeResponse struct {
	User  *domain.Principal `json:"user,omitempty"`
	Links pageLinks         `json:"_links"`
}

type authPageResponse struct {
	Page   string    `json:"page"`
	Action string    `json:"action"`
	Error  string    `json:"error,omitempty"`
	Links  pageLinks `json:"_links"`
}

// Home handles GET /.
//
// @Summary      Landing page
// @Tags         views
// @Produce      json
// @Success      200  {object}  homeResponse
// @Router       / [get]
func (h *ViewHandler) Home(c echo.Context) error {
	resp := homeResponse{}
	if p, err := h.sessions.CurrentPrincipal(c.Request().Context()); err == nil && p != nil {
		resp.User = p
		resp.Links = pageLinks{Dashboard: PathDashboard, Logout: "/auth/logout"}
	} else {
		resp.Links = pageLinks{Login: PathLogin, Signup: "/signup"}
	}
	return c.JSON(http.StatusOK, resp)
}

// Login handles GET /login. The error query parameter set by the auth
// callback is shown as-is.
//
// @Summary      Sign-in page
// @Tags         views
// @Produce      json
// @Param        error  query     string  false  "Message from a failed sign-in"
// @Success      200    {object}  authPageResponse
// @Router       /login [get]
func (h *ViewHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, authPageResponse{
		Page:   "login",
		Action: "/auth/login",
		Error:  c.QueryParam("error"),
		Links:  pageLinks{Signup: "/signup"},
	})
}

// Signup handles GET /signup.
//
// @Summary      Sign-up page
// @Tags         views
// @Produce      json
// @Success      200  {object}  authPageResponse
// @Router       /signup [get]
func (h *ViewHandler) Signup(c echo.Context) error {
	return c.JSON(http.StatusOK, authPageResponse{
		Page:   "signup",
		Action: "/auth/signup",
		Links:  pageLinks{Login: PathLogin},
	})
}
