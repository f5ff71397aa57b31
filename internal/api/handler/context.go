package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookmyshoot/booking-api/internal/api/middleware"
	"github.com/bookmyshoot/booking-api/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. Its absence
// means the guard did not run on this route — treat that as unauthenticated
// rather than panicking in the handler.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
	}
	return user, nil
}
