package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/davyken/Job-Fusion/internal/models"
	"github.com/davyken/Job-Fusion/internal/repositories"
	"github.com/davyken/Job-Fusion/internal/services"
)

type ApplicationHandler struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	storage         services.StorageService
	maxFileSize     int64
}

func NewApplicationHandler(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	storage services.StorageService,
	maxFileSize int64,
) *ApplicationHandler {
	return &ApplicationHandler{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		storage:         storage,
		maxFileSize:     maxFileSize,
	}
}

// HandleApply handles POST /jobs/:id/apply (candidates): multipart form
// with a "resume" file plus the application fields.
func (h *ApplicationHandler) HandleApply(c *fiber.Ctx) error {
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

	if _, err := h.jobRepo.FindByID(jobID); err != nil {
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"error": "job not found",
		})
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
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

	objectName := fmt.Sprintf("resume-%s-%s", uuid.New().String()[:8], uid)
	resumeURL, err := h.storage.Put(objectName, data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to store resume",
		})
	}

	application := &models.Application{
		JobID:       jobID,
		CandidateID: uid,
		Name:        c.FormValue("name"),
		Experience:  c.FormValue("experience"),
		Skills:      c.FormValue("skills"),
		Education:   c.FormValue("education"),
		Resume:      resumeURL,
		Status:      models.StatusApplied,
	}

	if err := h.applicationRepo.Create(application); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to submit application",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}

// HandleListMine handles GET /applications (candidates).
func (h *ApplicationHandler) HandleListMine(c *fiber.Ctx) error {
	uid := userID(c)
	if uid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing X-User-Id header",
		})
	}

	applications, err := h.applicationRepo.FindByCandidate(uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch applications",
		})
	}
	return c.JSON(applications)
}

// HandleUpdateStatus handles PATCH /jobs/:id/applications/status (recruiters).
func (h *ApplicationHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	uid := userID(c)
	if uid == "" || userRole(c) != RoleRecruiter {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "only recruiters can update application status",
		})
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job id",
		})
	}

	var req models.ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status is required",
		})
	}

	if err := h.applicationRepo.UpdateStatusByJob(jobID, req.Status); err != nil {
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"error": "no applications found for job",
		})
	}

	return c.JSON(fiber.Map{"job_id": jobID, "status": req.Status})
}
