package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookmyshoot/booking-api/internal/core/ports"
)

// OrganizationHandler handles organization endpoints.
type OrganizationHandler struct {
	orgs ports.OrganizationService
}

func NewOrganizationHandler(orgs ports.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgs: orgs}
}

type createOrganizationRequest struct {
	Name          string `json:"name" validate:"required"`
	Location      string `json:"location"`
	ContactNumber string `json:"contact_number"`
}

// Create handles POST /api/organizations. Only photographers and admins may
// register an organization.
//
// @Summary      Create an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrganizationRequest  true  "Organization details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/organizations [post]
func (h *OrganizationHandler) Create(c echo.Context) error {
	var req createOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	org, err := h.orgs.Create(c.Request().Context(), ports.CreateOrganizationInput{
		Name:          req.Name,
		Location:      req.Location,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, org)
}

// Get handles GET /api/organizations/:id.
//
// @Summary      Fetch an organization
// @Tags         organizations
// @Produce      json
// @Param        id   path      string  true  "Organization id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /api/organizations/{id} [get]
func (h *OrganizationHandler) Get(c echo.Context) error {
	org, err := h.orgs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, org)
}
