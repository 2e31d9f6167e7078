// Package repository is the only component that touches durable storage.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/justsurfingit/job-application-tracker/internal/dtos"
	"github.com/justsurfingit/job-application-tracker/internal/models"
)

// ErrNotFound signals a mutation that targeted a nonexistent record.
var ErrNotFound = errors.New("application not found")

type ApplicationRepository struct {
	db *gorm.DB
	// searchInsensitive lowers both sides of the substring match. Off by default,
	// matching the store's usual collation.
	searchInsensitive bool
}

func NewApplicationRepository(db *gorm.DB, searchInsensitive bool) *ApplicationRepository {
	return &ApplicationRepository{
		db:                db,
		searchInsensitive: searchInsensitive,
	}
}

// sortColumns maps the filter's sort keys to store columns. Anything else has been
// rejected by validation already.
var sortColumns = map[string]string{
	dtos.SortByApplicationDate: "application_date",
	dtos.SortByCompanyName:     "company_name",
}

// FindAll returns every record matching the filter, ordered by its sort clause.
// No pagination: the result set is unbounded by design.
func (r *ApplicationRepository) FindAll(ctx context.Context, filter dtos.FilterInput) ([]models.JobApplication, error) {
	q := r.db.WithContext(ctx).Model(&models.JobApplication{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		if r.searchInsensitive {
			q = q.Where("(LOWER(company_name) LIKE LOWER(?) OR LOWER(job_title) LIKE LOWER(?))", pattern, pattern)
		} else {
			q = q.Where("(company_name LIKE ? OR job_title LIKE ?)", pattern, pattern)
		}
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = sortColumns[dtos.SortByApplicationDate]
	}
	q = q.Order(clause.OrderByColumn{
		Column: clause.Column{Name: column},
		Desc:   filter.SortOrder != dtos.SortAsc,
	})

	var apps []models.JobApplication
	if err := q.Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// FindByID returns the matching record, or (nil, nil) when none exists.
func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application %s: %w", id, err)
	}
	return &app, nil
}

// Create inserts a new record; the store assigns id and timestamps.
func (r *ApplicationRepository) Create(ctx context.Context, input dtos.CreateInput) (*models.JobApplication, error) {
	app := models.JobApplication{
		CompanyName:     input.CompanyName,
		JobTitle:        input.JobTitle,
		Status:          input.Status,
		Location:        input.Location,
		SalaryRange:     input.SalaryRange,
		ApplicationDate: input.ApplicationDate,
		Notes:           input.Notes,
	}
	if err := r.db.WithContext(ctx).Create(&app).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &app, nil
}

// Update applies a partial field replacement and returns the full updated record.
// Returns ErrNotFound when no record matches the id.
func (r *ApplicationRepository) Update(ctx context.Context, id string, input dtos.UpdateInput) (*models.JobApplication, error) {
	changes := input.Changes()
	if len(changes) == 0 {
		// Nothing to replace, but the mutation still refreshes updated_at.
		changes["updated_at"] = time.Now().UTC()
	}

	res := r.db.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("id = ?", id).
		Updates(changes)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update application %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var app models.JobApplication
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload application %s: %w", id, err)
	}
	return &app, nil
}

// Remove hard-deletes the record matching id. Returns ErrNotFound when no record
// matches.
func (r *ApplicationRepository) Remove(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.JobApplication{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete application %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
