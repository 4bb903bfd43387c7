package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davyken/Job-Fusion/internal/repositories"
)

type SavedJobHandler struct {
	savedJobRepo repositories.SavedJobRepository
}

func NewSavedJobHandler(savedJobRepo repositories.SavedJobRepository) *SavedJobHandler {
	return &SavedJobHandler{savedJobRepo: savedJobRepo}
}

// HandleToggleSave handles POST /jobs/:id/save.
func (h *SavedJobHandler) HandleToggleSave(c *fiber.Ctx) error {
	uid := userID(c)
	if uid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing X-User-Id header",
		})
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job id",
		})
	}

	saved, err := h.savedJobRepo.Toggle(uid, jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to toggle saved job",
		})
	}

	return c.JSON(fiber.Map{"job_id": jobID, "saved": saved})
}

// HandleListSaved handles GET /saved-jobs.
func (h *SavedJobHandler) HandleListSaved(c *fiber.Ctx) error {
	uid := userID(c)
	if uid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing X-User-Id header",
		})
	}

	saved, err := h.savedJobRepo.FindByUser(uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch saved jobs",
		})
	}
	return c.JSON(saved)
}
