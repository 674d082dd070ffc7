package handlers

import (
	"venue-booking/internal/services"
	"venue-booking/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VenueHandler struct {
	service services.VenueService
	logger  *logrus.Logger
}

func NewVenueHandler(service services.VenueService, logger *logrus.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		logger:  logger,
	}
}

// ListVenues godoc
// @Summary List venues by area
// @Description Venues grouped by city and state, each with its number of upcoming shows
// @Tags venues
// @Produce json
// @Success 200 {object} utils.StandardResponse "Venues grouped by area"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *fiber.Ctx) error {
	areas, err := h.service.ListAreas(c.Context())
	if err != nil {
		return renderError(c, h.logger.WithField("op", "list_venues"), err, "Failed to retrieve venues")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venues retrieved successfully", areas)
}

// SearchVenues godoc
// @Summary Search venues
// @Description Case-insensitive partial match on venue name. An empty term matches every venue.
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param search body services.SearchForm false "Search term"
// @Param search_term query string false "Search term when no body is sent"
// @Success 200 {object} utils.StandardResponse "Matching venues"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /venues/search [post]
func (h *VenueHandler) SearchVenues(c *fiber.Ctx) error {
	term, err := searchTerm(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.service.SearchVenues(c.Context(), term)
	if err != nil {
		return renderError(c, h.logger.WithField("search_term", term), err, "Failed to search venues")
	}

	meta := utils.SearchMeta{SearchTerm: term, Count: result.Count}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Venues retrieved successfully", result, meta)
}

// GetVenue godoc
// @Summary Get venue by ID
// @Description Venue details with genres, show counts and upcoming/past shows
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse "Venue details"
// @Failure 400 {object} utils.StandardResponse "Invalid venue ID"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	venue, err := h.service.GetVenue(c.Context(), id)
	if err != nil {
		return renderError(c, h.logger.WithField("id", id), err, "Failed to retrieve venue")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venue retrieved successfully", venue)
}

// CreateVenue godoc
// @Summary List a new venue
// @Description Create a venue from a JSON or form submission. genres may repeat.
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param venue body services.VenueForm true "Venue form"
// @Success 201 {object} utils.StandardResponse "Venue was successfully listed"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Failure 500 {object} utils.StandardResponse "Venue could not be listed"
// @Router /venues [post]
func (h *VenueHandler) CreateVenue(c *fiber.Ctx) error {
	var form services.VenueForm
	if err := c.BodyParser(&form); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	venue, err := h.service.CreateVenue(c.Context(), &form)
	if err != nil {
		return renderError(c, h.logger.WithField("name", form.Name), err, "An error occurred. Venue "+form.Name+" could not be listed.")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Venue "+venue.Name+" was successfully listed!", venue)
}
