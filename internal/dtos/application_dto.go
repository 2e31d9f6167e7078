package dtos

import (
	"time"

	"github.com/justsurfingit/job-application-tracker/internal/models"
)

// CreateApplicationRequest is the raw creation payload before validation.
// ApplicationDate arrives as text and is coerced during validation.
type CreateApplicationRequest struct {
	CompanyName     string `json:"company_name" validate:"required,max=200"`
	JobTitle        string `json:"job_title" validate:"required,max=200"`
	Status          string `json:"status"`
	Location        string `json:"location" validate:"required,max=200"`
	SalaryRange     string `json:"salary_range" validate:"max=100"`
	ApplicationDate string `json:"application_date"`
	Notes           string `json:"notes" validate:"max=2000"`
}

// UpdateApplicationRequest is the raw update payload. Every field except ID is
// optional; nil means "leave unchanged", a present empty string is a validation error
// for required fields.
type UpdateApplicationRequest struct {
	ID              string  `json:"id"`
	CompanyName     *string `json:"company_name" validate:"omitempty,min=1,max=200"`
	JobTitle        *string `json:"job_title" validate:"omitempty,min=1,max=200"`
	Status          *string `json:"status"`
	Location        *string `json:"location" validate:"omitempty,min=1,max=200"`
	SalaryRange     *string `json:"salary_range" validate:"omitempty,max=100"`
	ApplicationDate *string `json:"application_date"`
	Notes           *string `json:"notes" validate:"omitempty,max=2000"`
}

// FilterRequest narrows and orders the list read. Bound from query params.
type FilterRequest struct {
	Status    string `json:"status" form:"status"`
	Search    string `json:"search" form:"search"`
	SortBy    string `json:"sort_by" form:"sortBy"`
	SortOrder string `json:"sort_order" form:"sortOrder"`
}

// CreateInput is a fully validated, normalized creation payload.
type CreateInput struct {
	CompanyName     string
	JobTitle        string
	Status          models.ApplicationStatus
	Location        string
	SalaryRange     string
	ApplicationDate time.Time
	Notes           string
}

// UpdateInput is a validated partial update: ID plus only the fields being replaced.
type UpdateInput struct {
	ID              string
	CompanyName     *string
	JobTitle        *string
	Status          *models.ApplicationStatus
	Location        *string
	SalaryRange     *string
	ApplicationDate *time.Time
	Notes           *string
}

// Changes flattens the set fields into a column→value map for the store.
func (u UpdateInput) Changes() map[string]any {
	changes := map[string]any{}
	if u.CompanyName != nil {
		changes["company_name"] = *u.CompanyName
	}
	if u.JobTitle != nil {
		changes["job_title"] = *u.JobTitle
	}
	if u.Status != nil {
		changes["status"] = *u.Status
	}
	if u.Location != nil {
		changes["location"] = *u.Location
	}
	if u.SalaryRange != nil {
		changes["salary_range"] = *u.SalaryRange
	}
	if u.ApplicationDate != nil {
		changes["application_date"] = *u.ApplicationDate
	}
	if u.Notes != nil {
		changes["notes"] = *u.Notes
	}
	return changes
}

// Sort keys accepted by the list read.
const (
	SortByApplicationDate = "applicationDate"
	SortByCompanyName     = "companyName"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterInput is a validated filter; zero values mean "not set" and DefaultFilter
// supplies the ordering defaults.
type FilterInput struct {
	Status    models.ApplicationStatus
	Search    string
	SortBy    string
	SortOrder string
}

// DefaultFilter is what reads fall back to when the raw filter fails validation.
func DefaultFilter() FilterInput {
	return FilterInput{
		SortBy:    SortByApplicationDate,
		SortOrder: SortDesc,
	}
}
