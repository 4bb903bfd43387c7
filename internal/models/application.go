package models

import (
	"time"
)

type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "applied"
	StatusInterviewing ApplicationStatus = "interviewing"
	StatusHired        ApplicationStatus = "hired"
	StatusRejected     ApplicationStatus = "rejected"
)

type Application struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	JobID       uint              `gorm:"not null;index" json:"job_id"`
	CandidateID string            `gorm:"type:text;not null;index" json:"candidate_id"`
	Name        string            `gorm:"type:text" json:"name"`
	Experience  string            `gorm:"type:text" json:"experience"`
	Skills      string            `gorm:"type:text" json:"skills"`
	Education   string            `gorm:"type:text" json:"education"`
	Resume      string            `gorm:"type:text" json:"resume"`
	Status      ApplicationStatus `gorm:"type:text;not null;default:'applied'" json:"status"`
	CreatedAt   time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relations
	Job Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}

type SavedJob struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:text;not null;index:idx_saved_user_job,unique" json:"user_id"`
	JobID     uint      `gorm:"not null;index:idx_saved_user_job,unique" json:"job_id"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relations
	Job Job `gorm:"foreignKey:JobID" json:"job"`
}

func (SavedJob) TableName() string {
	return "saved_jobs"
}
