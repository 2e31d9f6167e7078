package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationStatus is the closed set of states a tracked application moves through.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "APPLIED"
	StatusInterview ApplicationStatus = "INTERVIEW"
	StatusOffer     ApplicationStatus = "OFFER"
	StatusRejected  ApplicationStatus = "REJECTED"
	StatusGhosted   ApplicationStatus = "GHOSTED"
)

// ApplicationStatuses lists every valid status, in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusGhosted,
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusGhosted:
		return true
	}
	return false
}

// JobApplication is the sole entity: one row per application the user is tracking.
type JobApplication struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	CompanyName     string            `gorm:"not null" json:"company_name"`
	JobTitle        string            `gorm:"not null" json:"job_title"`
	Status          ApplicationStatus `gorm:"not null;default:'APPLIED'" json:"status"`
	Location        string            `gorm:"not null" json:"location"`
	SalaryRange     string            `json:"salary_range"`
	ApplicationDate time.Time         `gorm:"not null;index" json:"application_date"`
	Notes           string            `gorm:"type:text" json:"notes"`
}

// BeforeCreate assigns the ID so it exists before the INSERT; the store never
// sees a row without one.
func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
