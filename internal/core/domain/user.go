package domain

import (
	"errors"
	"time"
)

const (
	RoleCustomer     = "customer"
	RolePhotographer = "photographer"
	RoleAdmin        = "admin"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidSignup = errors.New("invalid signup details")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidProfileURL = errors.New("profile picture must be a valid URL")
var ErrTooManyAttempts = errors.New("too many login attempts")

// ValidRole reports whether role is an accepted account role.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RolePhotographer, RoleAdmin:
		return true
	}
	return false
}

// User models an account on the platform. PasswordHash is never serialized.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone,omitempty"`
	PasswordHash   string    `json:"-"`
	Role           string    `json:"role"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	OrganizationID string    `json:"organization_id,omitempty"`
	IsActive       bool      `json:"is_active"`
	LastLogin      time.Time `json:"last_login,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
