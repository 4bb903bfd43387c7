package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davyken/Job-Fusion/internal/models"
	"github.com/davyken/Job-Fusion/internal/repositories"
)

type CompanyHandler struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyHandler(companyRepo repositories.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{companyRepo: companyRepo}
}

// HandleListCompanies handles GET /companies.
func (h *CompanyHandler) HandleListCompanies(c *fiber.Ctx) error {
	companies, err := h.companyRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch companies",
		})
	}
	return c.JSON(companies)
}

// HandleCreateCompany handles POST /companies (recruiters).
func (h *CompanyHandler) HandleCreateCompany(c *fiber.Ctx) error {
	if userID(c) == "" || userRole(c) != RoleRecruiter {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "only recruiters can add companies",
		})
	}

	var req models.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "company name is required",
		})
	}

	company := &models.Company{
		Name:    req.Name,
		LogoURL: req.LogoURL,
	}

	if err := h.companyRepo.Create(company); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create company",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(company)
}
