package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bookmyshoot/booking-api/internal/core/ports"
)

// PhotographerService serves the public photographer directory.
type PhotographerService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewPhotographerService(repo ports.UserRepository, logger zerolog.Logger) *PhotographerService {
	return &PhotographerService{repo: repo, logger: logger}
}

// List returns all active photographers, newest first, with their
// organization summary populated when one is linked.
func (s *PhotographerService) List(ctx context.Context) ([]ports.PhotographerListing, error) {
	listings, err := s.repo.ListPhotographers(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list photographers")
		return nil, err
	}
	return listings, nil
}
