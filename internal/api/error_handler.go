package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/diary/internal/api/handler"
	"github.com/99minutos/diary/internal/api/metrics"
	"github.com/99minutos/diary/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Turns navigation errors (no session, missing entry, bad auth code)
//     into 303 redirects.
//   - Maps the remaining domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if to, ok := redirectFor(err); ok {
			if errors.Is(err, domain.ErrAuthRequired) {
				metrics.AuthRedirectsTotal.Inc()
			}
			_ = handler.Redirect(c, to)
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func redirectFor(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		return handler.PathLogin, true
	case errors.Is(err, domain.ErrEntryNotFound):
		return handler.PathDashboard, true
	case errors.Is(err, domain.ErrInvalidAuthCode):
		return handler.LoginErrorURL("authentication failed"), true
	}
	return "", false
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, ve.Message
	}

	switch {
	case errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusConflict, "confirmation required"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid login credentials"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrThemeNotReady):
		return http.StatusServiceUnavailable, "theme not ready"
	case errors.Is(err, domain.ErrPersistence):
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("persistence error")
		return http.StatusInternalServerError, "could not save changes, please try again"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
