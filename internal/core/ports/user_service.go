package ports

import (
	"context"
	"time"

	"github.com/bookmyshoot/booking-api/internal/core/domain"
)

// SignupInput carries all data needed to create a new account.
type SignupInput struct {
	Email          string
	Password       string
	FullName       string
	Phone          string
	Role           string
	ProfilePicture string
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
	User        *domain.User
}

// UserService defines the account use-cases: signup, login, current-user
// lookup, and profile-image updates.
type UserService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Me(ctx context.Context, email string) (*domain.User, error)
	UpdateProfileImage(ctx context.Context, email, pictureURL string) (*domain.User, error)
}

// LoginThrottle limits repeated login attempts per identifier. Implementations
// are best-effort: a backend outage must not lock users out.
type LoginThrottle interface {
	Allow(ctx context.Context, email string) (bool, error)
	Reset(ctx context.Context, email string) error
}
