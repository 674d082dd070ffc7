package handlers

import (
	"errors"
	"strconv"

	"venue-booking/internal/services"
	"venue-booking/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// renderError maps service errors onto the response envelope. Store failures
// never leak their cause to the client.
func renderError(c *fiber.Ctx, log *logrus.Entry, err error, failMessage string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, "Validation failed", verr.Fields)
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Resource not found")
	default:
		log.WithError(err).Error(failMessage)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, failMessage)
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// searchTerm reads search_term from a JSON or form body, falling back to the
// query string when the body is empty.
func searchTerm(c *fiber.Ctx) (string, error) {
	var form services.SearchForm
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&form); err != nil {
			return "", err
		}
		return form.SearchTerm, nil
	}
	return c.Query("search_term"), nil
}
