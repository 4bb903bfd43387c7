package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/davyken/Job-Fusion/internal/models"
)

type SavedJobRepository interface {
	// Toggle saves the job for the user, or removes the existing save.
	// It reports whether the job ended up saved.
	Toggle(userID string, jobID uint) (bool, error)
	FindByUser(userID string) ([]models.SavedJob, error)
}

type savedJobRepository struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &savedJobRepository{db: db}
}

// Toggle implements SavedJobRepository.
func (r *savedJobRepository) Toggle(userID string, jobID uint) (bool, error) {
	var existing models.SavedJob
	err := r.db.
		Where("user_id = ? AND job_id = ?", userID, jobID).
		First(&existing).Error

	if err == nil {
		if err := r.db.Delete(&existing).Error; err != nil {
			return true, fmt.Errorf("failed to remove saved job: %w", err)
		}
		return false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to look up saved job: %w", err)
	}

	saved := models.SavedJob{UserID: userID, JobID: jobID}
	if err := r.db.Create(&saved).Error; err != nil {
		return false, fmt.Errorf("failed to save job: %w", err)
	}
	return true, nil
}

// FindByUser implements SavedJobRepository.
func (r *savedJobRepository) FindByUser(userID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := r.db.
		Preload("Job").
		Preload("Job.Company").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch saved jobs: %w", err)
	}
	return saved, nil
}
