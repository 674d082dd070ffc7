package handlers

import (
	"strconv"

	"venue-booking/internal/models"
	"venue-booking/internal/services"
	"venue-booking/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ShowHandler struct {
	service services.ShowService
	logger  *logrus.Logger
}

func NewShowHandler(service services.ShowService, logger *logrus.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		logger:  logger,
	}
}

// ListShows godoc
// @Summary List shows
// @Description Every show with its venue and artist, flagged when already past
// @Tags shows
// @Produce json
// @Success 200 {object} utils.StandardResponse "Shows"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /shows [get]
func (h *ShowHandler) ListShows(c *fiber.Ctx) error {
	shows, err := h.service.ListShows(c.Context())
	if err != nil {
		return renderError(c, h.logger.WithField("op", "list_shows"), err, "Failed to retrieve shows")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Shows retrieved successfully", shows)
}

// CreateShow godoc
// @Summary List a new show
// @Description Book an existing artist at an existing venue
// @Tags shows
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param show body services.ShowForm true "Show form"
// @Success 201 {object} utils.StandardResponse "Show was successfully listed"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Failure 500 {object} utils.StandardResponse "Show could not be listed"
// @Router /shows [post]
func (h *ShowHandler) CreateShow(c *fiber.Ctx) error {
	var form services.ShowForm
	if err := c.BodyParser(&form); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	show, err := h.service.CreateShow(c.Context(), &form)
	if err != nil {
		return renderError(c, h.logger.WithFields(logrus.Fields{
			"venue_id":  form.VenueID,
			"artist_id": form.ArtistID,
		}), err, "An error occurred. Show could not be listed.")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Show was successfully listed!", show)
}

// GetShowCounts godoc
// @Summary Count upcoming and past shows
// @Description Upcoming and past show counts for one venue or one artist
// @Tags shows
// @Produce json
// @Param role query string true "Which side of the show id refers to" Enums(venue, artist)
// @Param id query int true "Venue or artist ID"
// @Success 200 {object} utils.StandardResponse "Show counts"
// @Failure 400 {object} utils.StandardResponse "Invalid role or id"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /shows/counts [get]
func (h *ShowHandler) GetShowCounts(c *fiber.Ctx) error {
	role := models.ShowRole(c.Query("role"))
	if _, err := role.Column(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "role must be venue or artist")
	}

	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil || id == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id")
	}

	counts, err := h.service.ShowCounts(c.Context(), role, uint(id))
	if err != nil {
		return renderError(c, h.logger.WithFields(logrus.Fields{
			"role": role,
			"id":   id,
		}), err, "Failed to count shows")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Show counts retrieved successfully", counts)
}
