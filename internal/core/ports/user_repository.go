package ports

import (
	"context"

	"github.com/bookmyshoot/booking-api/internal/core/domain"
)

// UserRepository defines the persistence operations the core depends on.
// Implementations must return domain.ErrUserExists on duplicate email and
// domain.ErrUserNotFound when a lookup misses.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfilePicture(ctx context.Context, email, pictureURL string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, email string) error
	ListPhotographers(ctx context.Context) ([]PhotographerListing, error)
}
