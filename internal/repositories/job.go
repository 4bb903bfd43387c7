package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/davyken/Job-Fusion/internal/apperrors"
	"github.com/davyken/Job-Fusion/internal/models"
)

type JobRepository interface {
	Create(job *models.Job) error
	FindAll() ([]models.Job, error)
	FindOpen() ([]models.Job, error)
	FindByID(id uint) (*models.Job, error)
	FindByRecruiter(recruiterID string) ([]models.Job, error)
	UpdateHiringStatus(id uint, recruiterID string, isOpen bool) error
	Delete(id uint, recruiterID string) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository.
func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// FindAll implements JobRepository.
func (r *jobRepository) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Preload("Company").Order("id ASC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}
	return jobs, nil
}

// FindOpen returns the postings eligible for matching, in catalog order.
func (r *jobRepository) FindOpen() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Preload("Company").
		Where("is_open = ?", true).
		Order("id ASC").
		Find(&jobs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch open jobs: %w", err)
	}
	return jobs, nil
}

// FindByID implements JobRepository.
func (r *jobRepository) FindByID(id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.
		Preload("Company").
		Preload("Applications").
		Where("id = ?", id).
		First(&job).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

// FindByRecruiter implements JobRepository.
func (r *jobRepository) FindByRecruiter(recruiterID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Preload("Company").
		Where("recruiter_id = ?", recruiterID).
		Order("id ASC").
		Find(&jobs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch recruiter jobs: %w", err)
	}
	return jobs, nil
}

// UpdateHiringStatus implements JobRepository.
func (r *jobRepository) UpdateHiringStatus(id uint, recruiterID string, isOpen bool) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ? AND recruiter_id = ?", id, recruiterID).
		Update("is_open", isOpen)

	if result.Error != nil {
		return fmt.Errorf("failed to update hiring status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete implements JobRepository.
func (r *jobRepository) Delete(id uint, recruiterID string) error {
	result := r.db.
		Where("id = ? AND recruiter_id = ?", id, recruiterID).
		Delete(&models.Job{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
