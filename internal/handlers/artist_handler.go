package handlers

import (
	"venue-booking/internal/services"
	"venue-booking/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ArtistHandler struct {
	service services.ArtistService
	logger  *logrus.Logger
}

func NewArtistHandler(service services.ArtistService, logger *logrus.Logger) *ArtistHandler {
	return &ArtistHandler{
		service: service,
		logger:  logger,
	}
}

// ListArtists godoc
// @Summary List artists
// @Tags artists
// @Produce json
// @Success 200 {object} utils.StandardResponse "Artist ids and names"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /artists [get]
func (h *ArtistHandler) ListArtists(c *fiber.Ctx) error {
	artists, err := h.service.ListArtists(c.Context())
	if err != nil {
		return renderError(c, h.logger.WithField("op", "list_artists"), err, "Failed to retrieve artists")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artists retrieved successfully", artists)
}

// SearchArtists godoc
// @Summary Search artists
// @Description Case-insensitive partial match on artist name. An empty term matches every artist.
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param search body services.SearchForm false "Search term"
// @Param search_term query string false "Search term when no body is sent"
// @Success 200 {object} utils.StandardResponse "Matching artists"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /artists/search [post]
func (h *ArtistHandler) SearchArtists(c *fiber.Ctx) error {
	term, err := searchTerm(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.service.SearchArtists(c.Context(), term)
	if err != nil {
		return renderError(c, h.logger.WithField("search_term", term), err, "Failed to search artists")
	}

	meta := utils.SearchMeta{SearchTerm: term, Count: result.Count}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Artists retrieved successfully", result, meta)
}

// GetArtist godoc
// @Summary Get artist by ID
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse "Artist details"
// @Failure 400 {object} utils.StandardResponse "Invalid artist ID"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Router /artists/{id} [get]
func (h *ArtistHandler) GetArtist(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	artist, err := h.service.GetArtist(c.Context(), id)
	if err != nil {
		return renderError(c, h.logger.WithField("id", id), err, "Failed to retrieve artist")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artist retrieved successfully", artist)
}

// CreateArtist godoc
// @Summary List a new artist
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param artist body services.ArtistForm true "Artist form"
// @Success 201 {object} utils.StandardResponse "Artist was successfully listed"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Failure 500 {object} utils.StandardResponse "Artist could not be listed"
// @Router /artists [post]
func (h *ArtistHandler) CreateArtist(c *fiber.Ctx) error {
	var form services.ArtistForm
	if err := c.BodyParser(&form); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	artist, err := h.service.CreateArtist(c.Context(), &form)
	if err != nil {
		return renderError(c, h.logger.WithField("name", form.Name), err, "An error occurred. Artist "+form.Name+" could not be listed.")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Artist "+artist.Name+" was successfully listed!", artist)
}
