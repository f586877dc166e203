package handler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/diary/internal/api/metrics"
	"github.com/99minutos/diary/internal/api/middleware"
	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

const (
	pathCallback      = "/auth/callback"
	msgAuthFailed     = "authentication failed"
	msgCheckConfirmed = "Account created. Follow the confirmation link to sign in."
)

type AuthHandler struct {
	authService  ports.AuthService
	cookieSecure bool
}

func NewAuthHandler(authService ports.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecure: cookieSecure}
}

type credentialsRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

type signupResponse struct {
	User         *domain.User `json:"user"`
	Message      string       `json:"message"`
	Confirmation string       `json:"confirmation"`
}

func callbackURL(code string) string {
	return pathCallback + "?" + url.Values{"code": {code}}.Encode()
}

// LoginErrorURL is the sign-in page showing msg.
func LoginErrorURL(msg string) string {
	return PathLogin + "?" + url.Values{"error": {msg}}.Encode()
}

// Signup creates a new account.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      201   {object}  signupResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, code, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthEventsTotal.WithLabelValues("signup", "error").Inc()
		return err
	}

	metrics.AuthEventsTotal.WithLabelValues("signup", "ok").Inc()
	return c.JSON(http.StatusCreated, signupResponse{
		User:         user,
		Message:      msgCheckConfirmed,
		Confirmation: callbackURL(code),
	})
}

// Login verifies credentials and hands the client to the auth callback.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      303   {object}  navigationResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	code, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthEventsTotal.WithLabelValues("login", "error").Inc()
		return err
	}

	metrics.AuthEventsTotal.WithLabelValues("login", "ok").Inc()
	return Redirect(c, callbackURL(code))
}

// Callback exchanges a one-time code for a session cookie.
//
// @Summary      Complete sign-in
// @Tags         auth
// @Produce      json
// @Param        code  query     string  false  "One-time auth code"
// @Success      303   {object}  navigationResponse
// @Router       /auth/callback [get]
func (h *AuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return Redirect(c, PathLogin)
	}

	session, err := h.authService.ExchangeAuthCode(c.Request().Context(), code)
	if err != nil {
		metrics.AuthEventsTotal.WithLabelValues("callback", "error").Inc()
		return Redirect(c, LoginErrorURL(msgAuthFailed))
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.AuthEventsTotal.WithLabelValues("callback", "ok").Inc()
	return Redirect(c, PathDashboard)
}

// Logout ends the session and returns to the home page.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      303  {object}  navigationResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	if token, ok := ports.SessionTokenFrom(c.Request().Context()); ok {
		if err := h.authService.SignOut(c.Request().Context(), token); err != nil {
			metrics.AuthEventsTotal.WithLabelValues("logout", "error").Inc()
			return err
		}
	}

	metrics.AuthEventsTotal.WithLabelValues("logout", "ok").Inc()
	return Redirect(c, PathHome)
}
