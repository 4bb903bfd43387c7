package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/davyken/Job-Fusion/internal/models"
	"github.com/davyken/Job-Fusion/internal/repositories"
	"github.com/davyken/Job-Fusion/internal/services"
)

type CVHandler struct {
	pipeline    services.CVPipelineService
	profileRepo repositories.ProfileRepository
	maxFileSize int64
}

func NewCVHandler(
	pipeline services.CVPipelineService,
	profileRepo repositories.ProfileRepository,
	maxFileSize int64,
) *CVHandler {
	return &CVHandler{
		pipeline:    pipeline,
		profileRepo: profileRepo,
		maxFileSize: maxFileSize,
	}
}

// HandleUploadCV handles POST /cv/upload: multipart field "cv".
func (h *CVHandler) HandleUploadCV(c *fiber.Ctx) error {
	uid := userID(c)
	if uid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing X-User-Id header",
		})
	}

	file, err := c.FormFile("cv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cv file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	mimeType := file.Header.Get("Content-Type")

	profile, err := h.pipeline.ProcessUpload(c.UserContext(), uid, file.Filename, mimeType, data)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.CVUploadResponse{
		Skills:     profile.Skills,
		Experience: profile.Experience,
		Education:  profile.Education,
		CVURL:      profile.CVURL,
	})
}

// HandleGetCV handles GET /cv: the caller's current parsed profile.
func (h *CVHandler) HandleGetCV(c *fiber.Ctx) error {
	uid := userID(c)
	if uid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing X-User-Id header",
		})
	}

	profile, err := h.profileRepo.FindLatestByUser(uid)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"error": "no CV on file, upload one to get personalized recommendations",
		})
	}

	return c.JSON(profile)
}
