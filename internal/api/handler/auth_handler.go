package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookmyshoot/booking-api/internal/core/ports"
)

// AuthHandler handles account signup, login and profile endpoints.
type AuthHandler struct {
	users ports.UserService
}

func NewAuthHandler(users ports.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Signup creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Signup(c.Request().Context(), ports.SignupInput{
		Email:          req.Email,
		Password:       req.Password,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Role:           req.Role,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userResponse{User: user})
}

// Login authenticates an account and returns a bearer token. The body is
// form-encoded (username/password) for OAuth2 password-flow compatibility
// with the existing web client.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Account email"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  tokenResponse
// @Failure      401       {object}  map[string]string
// @Failure      429       {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")

	result, err := h.users.Login(c.Request().Context(), email, password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
		User:        result.User,
	})
}

// Me returns the authenticated account's public fields.
//
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// UpdateProfileImage replaces the account's profile picture URL.
//
// @Summary      Update profile picture
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileImageRequest  true  "New picture URL"
// @Success      200   {object}  userResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/auth/profile-image [put]
func (h *AuthHandler) UpdateProfileImage(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.users.UpdateProfileImage(c.Request().Context(), user.Email, req.ProfilePicture)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{User: updated})
}
