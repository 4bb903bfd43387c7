package models

import (
	"time"
)

type Job struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RecruiterID  string    `gorm:"type:text;index" json:"recruiter_id"`
	Title        string    `gorm:"type:text;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Location     string    `gorm:"type:text" json:"location"`
	Requirements string    `gorm:"type:text" json:"requirements"`
	IsOpen       bool      `gorm:"column:is_open;default:true" json:"isOpen"`
	CompanyID    uint      `gorm:"not null" json:"company_id"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relations
	Company      Company       `gorm:"foreignKey:CompanyID" json:"company"`
	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}

func (Job) TableName() string {
	return "jobs"
}

type Company struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:text;not null;uniqueIndex" json:"name"`
	LogoURL string `gorm:"column:logo_url;type:text" json:"logo_url"`
}

func (Company) TableName() string {
	return "companies"
}

// MatchResult pairs a job with its relevance score for one recommendation
// request. It is recomputed per request and never persisted.
type MatchResult struct {
	Job   Job     `json:"job"`
	Score float64 `json:"score"`
}
