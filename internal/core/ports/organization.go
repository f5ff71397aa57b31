package ports

import (
	"context"

	"github.com/bookmyshoot/booking-api/internal/core/domain"
)

// OrganizationRepository persists organizations.
type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error)
	FindByID(ctx context.Context, id string) (*domain.Organization, error)
}

// CreateOrganizationInput carries the fields accepted on creation.
type CreateOrganizationInput struct {
	Name          string
	Location      string
	ContactNumber string
}

// OrganizationService defines organization use-cases.
type OrganizationService interface {
	Create(ctx context.Context, input CreateOrganizationInput) (*domain.Organization, error)
	Get(ctx context.Context, id string) (*domain.Organization, error)
}
