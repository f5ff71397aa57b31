package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookmyshoot/booking-api/internal/core/domain"
	"github.com/bookmyshoot/booking-api/internal/core/ports"
)

// OrganizationService implements organization use-cases.
type OrganizationService struct {
	repo   ports.OrganizationRepository
	logger zerolog.Logger
}

func NewOrganizationService(repo ports.OrganizationRepository, logger zerolog.Logger) *OrganizationService {
	return &OrganizationService{repo: repo, logger: logger}
}

// Create persists a new organization. Name is required; all fields are
// trimmed before storage.
func (s *OrganizationService) Create(ctx context.Context, input ports.CreateOrganizationInput) (*domain.Organization, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrOrganizationName
	}

	org := &domain.Organization{
		Name:          name,
		Location:      strings.TrimSpace(input.Location),
		ContactNumber: strings.TrimSpace(input.ContactNumber),
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, org)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("organization", created.Name).Msg("organization created")
	return created, nil
}

// Get returns the organization with the given id.
func (s *OrganizationService) Get(ctx context.Context, id string) (*domain.Organization, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrOrganizationNotFound
	}
	return s.repo.FindByID(ctx, id)
}
