package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/davyken/Job-Fusion/internal/apperrors"
	"github.com/davyken/Job-Fusion/internal/models"
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByCandidate(candidateID string) ([]models.Application, error)
	UpdateStatusByJob(jobID uint, status models.ApplicationStatus) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create implements ApplicationRepository.
func (r *applicationRepository) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// FindByCandidate implements ApplicationRepository.
func (r *applicationRepository) FindByCandidate(candidateID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("Job").
		Preload("Job.Company").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&applications).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}
	return applications, nil
}

// UpdateStatusByJob implements ApplicationRepository.
func (r *applicationRepository) UpdateStatusByJob(jobID uint, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("job_id = ?", jobID).
		Update("status", status)

	if result.Error != nil {
		return fmt.Errorf("failed to update application status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
