package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bookmyshoot/booking-api/internal/api/metrics"
	"github.com/bookmyshoot/booking-api/internal/core/auth"
	"github.com/bookmyshoot/booking-api/internal/core/domain"
	"github.com/bookmyshoot/booking-api/internal/core/ports"
)

// Context keys populated by the access guard.
const (
	ContextUserKey  = "user"
	ContextEmailKey = "email"
	ContextRoleKey  = "role"
)

// unauthenticated is the single 401 returned on every guard failure. The
// sub-reason (missing header, bad signature, expiry, deleted account) is
// deliberately not exposed to the client.
func unauthenticated() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
}

// Auth is the access guard: it extracts the bearer token, verifies it, loads
// the referenced user, and injects user, email and role into the context.
// Authentication failures short-circuit with 401; repository errors other
// than a missing user propagate to the central error handler.
func Auth(tokens *auth.TokenManager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthenticated()
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthenticated()
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				switch err {
				case auth.ErrTokenExpired:
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				default:
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				}
				return unauthenticated()
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					// A valid token whose account has since vanished is treated
					// the same as an invalid one.
					metrics.TokenVerificationsTotal.WithLabelValues("user_gone").Inc()
					return unauthenticated()
				}
				// A storage failure is not an authentication failure: let the
				// central handler render it as a 500 instead of telling the
				// client its token is bad.
				metrics.TokenVerificationsTotal.WithLabelValues("error").Inc()
				return err
			}
			if !user.IsActive {
				metrics.TokenVerificationsTotal.WithLabelValues("user_gone").Inc()
				return unauthenticated()
			}

			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()

			c.Set(ContextUserKey, user)
			c.Set(ContextEmailKey, user.Email)
			c.Set(ContextRoleKey, user.Role)

			return next(c)
		}
	}
}
