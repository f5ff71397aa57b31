package handler

import "github.com/bookmyshoot/booking-api/internal/core/domain"

// --- Request / Response types ---

type signupRequest struct {
	Email          string `json:"email"           validate:"required,email"`
	Password       string `json:"password"        validate:"required,min=8"`
	FullName       string `json:"full_name"       validate:"required"`
	Phone          string `json:"phone"           validate:"omitempty"`
	Role           string `json:"role"            validate:"required,oneof=customer photographer admin"`
	ProfilePicture string `json:"profile_picture"`
}

type updateProfileImageRequest struct {
	ProfilePicture string `json:"profile_picture"`
}

// userResponse is the public view of an account. The password hash is already
// excluded by the domain type's json tags; this wrapper exists so the wire
// contract stays stable if internal fields change.
type userResponse struct {
	User *domain.User `json:"user"`
}

// tokenResponse follows the OAuth2 bearer-token shape the web client expects.
type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        *domain.User `json:"user"`
}
