package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/davyken/Job-Fusion/internal/models"
)

type CompanyRepository interface {
	Create(company *models.Company) error
	FindAll() ([]models.Company, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// Create implements CompanyRepository.
func (r *companyRepository) Create(company *models.Company) error {
	if err := r.db.Create(company).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

// FindAll implements CompanyRepository.
func (r *companyRepository) FindAll() ([]models.Company, error) {
	var companies []models.Company
	if err := r.db.Order("name ASC").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}
	return companies, nil
}
