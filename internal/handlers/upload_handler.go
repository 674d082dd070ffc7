package handlers

import (
	"venue-booking/internal/services"
	"venue-booking/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	images services.ImageService
	logger *logrus.Logger
}

func NewUploadHandler(images services.ImageService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		images: images,
		logger: logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for an image upload
// @Description Generate a presigned PUT URL for a venue or artist image. The public URL goes into image_link.
// @Tags upload
// @Produce json
// @Param kind query string true "Image folder" Enums(venues, artists)
// @Param filename query string true "Filename"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	kind, err := services.ParseImageKind(c.Query("kind"))
	if err != nil {
		return renderError(c, h.logger.WithField("kind", c.Query("kind")), err, "Failed to generate presigned URL")
	}

	upload, err := h.images.PresignUpload(c.Context(), kind, filename)
	if err != nil {
		return renderError(c, h.logger.WithField("filename", filename), err, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", upload)
}
