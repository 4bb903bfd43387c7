package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/davyken/Job-Fusion/internal/models"
	"github.com/davyken/Job-Fusion/internal/repositories"
)

type JobHandler struct {
	jobRepo repositories.JobRepository
}

func NewJobHandler(jobRepo repositories.JobRepository) *JobHandler {
	return &JobHandler{jobRepo: jobRepo}
}

// HandleListJobs handles GET /jobs.
func (h *JobHandler) HandleListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch jobs",
		})
	}
	return c.JSON(jobs)
}

// HandleGetJob handles GET /jobs/:id.
func (h *JobHandler) HandleGetJob(c *fiber.Ctx) error {
	id, err := parseJobID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job id",
		})
	}

	job, err := h.jobRepo.FindByID(id)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"error": "job not found",
		})
	}
	return c.JSON(job)
}

// HandleCreateJob handles POST /jobs (recruiters).
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	uid := userID(c)
	if uid == "" || userRole(c) != RoleRecruiter {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "only recruiters can post jobs",
		})
	}

	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	if req.Title == "" || req.CompanyID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title and company_id are required",
		})
	}

	job := &models.Job{
		RecruiterID:  uid,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Requirements: req.Requirements,
		IsOpen:       true,
		CompanyID:    req.CompanyID,
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create job",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleMyJobs handles GET /jobs/mine (recruiters).
func (h *JobHandler) HandleMyJobs(c *fiber.Ctx) error {
	uid := userID(c)
	if uid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing X-User-Id header",
		})
	}

	jobs, err := h.jobRepo.FindByRecruiter(uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch jobs",
		})
	}
	return c.JSON(jobs)
}

// HandleUpdateHiringStatus handles PATCH /jobs/:id/status (job owner).
func (h *JobHandler) HandleUpdateHiringStatus(c *fiber.Ctx) error {
	uid := userID(c)
	if uid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing X-User-Id header",
		})
	}

	id, err := parseJobID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job id",
		})
	}

	var req models.HiringStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	if err := h.jobRepo.UpdateHiringStatus(id, uid, req.IsOpen); err != nil {
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"error": "job not found",
		})
	}

	return c.JSON(fiber.Map{"id": id, "isOpen": req.IsOpen})
}

// HandleDeleteJob handles DELETE /jobs/:id (job owner).
func (h *JobHandler) HandleDeleteJob(c *fiber.Ctx) error {
	uid := userID(c)
	if uid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing X-User-Id header",
		})
	}

	id, err := parseJobID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job id",
		})
	}

	if err := h.jobRepo.Delete(id, uid); err != nil {
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"error": "job not found",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseJobID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
