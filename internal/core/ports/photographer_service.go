package ports

import "context"

// OrganizationSummary is the subset of organization fields shown in the
// public photographer directory.
type OrganizationSummary struct {
	Name     string
	Location string
}

// PhotographerListing is one entry of the public directory: the
// photographer's public fields with the owning organization populated.
type PhotographerListing struct {
	ID             string
	Name           string
	Email          string
	ProfilePicture string
	OrganizationID string
	Organization   *OrganizationSummary
}

// PhotographerService exposes the public photographer directory.
type PhotographerService interface {
	List(ctx context.Context) ([]PhotographerListing, error)
}
