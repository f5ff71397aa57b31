package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookmyshoot/booking-api/internal/core/ports"
)

// PhotographerHandler serves the public photographer directory.
type PhotographerHandler struct {
	photographers ports.PhotographerService
}

func NewPhotographerHandler(photographers ports.PhotographerService) *PhotographerHandler {
	return &PhotographerHandler{photographers: photographers}
}

type organizationSummaryResponse struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

type photographerResponse struct {
	ID             string                       `json:"id"`
	Name           string                       `json:"name"`
	Email          string                       `json:"email"`
	ProfilePicture string                       `json:"profile_picture,omitempty"`
	OrganizationID string                       `json:"organization_id,omitempty"`
	Organization   *organizationSummaryResponse `json:"organization,omitempty"`
}

type listPhotographersResponse struct {
	Photographers []photographerResponse `json:"photographers"`
}

// List handles GET /api/photographers.
//
// @Summary      List photographers
// @Tags         photographers
// @Produce      json
// @Success      200  {object}  listPhotographersResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/photographers [get]
func (h *PhotographerHandler) List(c echo.Context) error {
	listings, err := h.photographers.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listPhotographersResponse{Photographers: make([]photographerResponse, 0, len(listings))}
	for _, l := range listings {
		item := photographerResponse{
			ID:             l.ID,
			Name:           l.Name,
			Email:          l.Email,
			ProfilePicture: l.ProfilePicture,
			OrganizationID: l.OrganizationID,
		}
		if l.Organization != nil {
			item.Organization = &organizationSummaryResponse{
				Name:     l.Organization.Name,
				Location: l.Organization.Location,
			}
		}
		resp.Photographers = append(resp.Photographers, item)
	}

	return c.JSON(http.StatusOK, resp)
}
