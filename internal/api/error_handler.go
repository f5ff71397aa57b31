package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookmyshoot/booking-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, guard rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Note that
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response cannot be used to enumerate accounts.
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "incorrect email or password"
	case errors.Is(err, domain.ErrInvalidProfileURL):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "too many login attempts, try again later"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "insufficient role"
	case errors.Is(err, domain.ErrInvalidSignup):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrOrganizationName):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrOrganizationNotFound):
		return http.StatusNotFound, "organization not found"
	case errors.Is(err, domain.ErrUserNotFound):
		// A vanished account behind a valid token must look like any other
		// authentication failure.
		return http.StatusUnauthorized, "could not validate credentials"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
