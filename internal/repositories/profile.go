package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/davyken/Job-Fusion/internal/apperrors"
	"github.com/davyken/Job-Fusion/internal/models"
)

// ProfileRepository owns the one current CV profile per user. Upserts are
// last-write-wins; two concurrent uploads for the same user simply race and
// the later write survives.
type ProfileRepository interface {
	Upsert(profile *models.UserCV) error
	FindLatestByUser(userID string) (*models.UserCV, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert implements ProfileRepository.
func (r *profileRepository) Upsert(profile *models.UserCV) error {
	profile.ParsedAt = time.Now()

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"skills", "experience", "education", "cv_url", "parsed_at",
		}),
	}).Create(profile).Error

	if err != nil {
		return fmt.Errorf("failed to upsert profile for user %s: %w", profile.UserID, err)
	}

	return nil
}

// FindLatestByUser implements ProfileRepository.
func (r *profileRepository) FindLatestByUser(userID string) (*models.UserCV, error) {
	var profile models.UserCV
	err := r.db.
		Where("user_id = ?", userID).
		Order("parsed_at DESC").
		First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return &profile, nil
}
