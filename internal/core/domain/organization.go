package domain

import (
	"errors"
	"time"
)

var ErrOrganizationName = errors.New("organization name is required")
var ErrOrganizationNotFound = errors.New("organization not found")

// Organization groups photographers under a studio or agency.
type Organization struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
