package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/job-application-tracker/internal/dtos"
	"github.com/justsurfingit/job-application-tracker/internal/models"
	"github.com/justsurfingit/job-application-tracker/internal/repository"
	"github.com/justsurfingit/job-application-tracker/internal/validation"
)

// Envelope error strings. ErrMsgNotFound is the one the transport maps to a 404.
const (
	ErrMsgNotFound     = "Application not found"
	ErrMsgCreateFailed = "Failed to create application"
	ErrMsgUpdateFailed = "Failed to update application"
	ErrMsgDeleteFailed = "Failed to delete application"
)

// Invalidator tells the presentation layer that cached list views are stale. Called
// after every successful mutation.
type Invalidator func()

// ApplicationService is the single entry point the presentation layer consumes.
type ApplicationService struct {
	Repo       *repository.ApplicationRepository
	Invalidate Invalidator
}

func NewApplicationService(repo *repository.ApplicationRepository, invalidate Invalidator) *ApplicationService {
	if invalidate == nil {
		invalidate = func() {}
	}
	return &ApplicationService{
		Repo:       repo,
		Invalidate: invalidate,
	}
}

// CreateApplication validates the raw payload and inserts a new record.
func (s *ApplicationService) CreateApplication(ctx context.Context, req dtos.CreateApplicationRequest) Result[*models.JobApplication] {
	input, fieldErrors := validation.ValidateCreate(req)
	if fieldErrors != nil {
		return invalid[*models.JobApplication](fieldErrors)
	}

	app, err := s.Repo.Create(ctx, input)
	if err != nil {
		logrus.WithError(err).Error("Failed to create application")
		return fail[*models.JobApplication](ErrMsgCreateFailed)
	}

	s.Invalidate()
	return ok(app)
}

// UpdateApplication validates the raw payload, splits it into id + changed fields,
// and applies the partial replacement.
func (s *ApplicationService) UpdateApplication(ctx context.Context, req dtos.UpdateApplicationRequest) Result[*models.JobApplication] {
	input, fieldErrors := validation.ValidateUpdate(req)
	if fieldErrors != nil {
		return invalid[*models.JobApplication](fieldErrors)
	}

	app, err := s.Repo.Update(ctx, input.ID, input)
	if errors.Is(err, repository.ErrNotFound) {
		return fail[*models.JobApplication](ErrMsgNotFound)
	}
	if err != nil {
		logrus.WithError(err).WithField("id", input.ID).Error("Failed to update application")
		return fail[*models.JobApplication](ErrMsgUpdateFailed)
	}

	s.Invalidate()
	return ok(app)
}

// DeleteApplication hard-deletes the record matching id.
func (s *ApplicationService) DeleteApplication(ctx context.Context, id string) Result[any] {
	err := s.Repo.Remove(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fail[any](ErrMsgNotFound)
	}
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("Failed to delete application")
		return fail[any](ErrMsgDeleteFailed)
	}

	s.Invalidate()
	return Result[any]{Success: true}
}

// GetApplications lists records matching the raw filter. An invalid filter is
// silently downgraded to the default one; read paths are best-effort.
func (s *ApplicationService) GetApplications(ctx context.Context, req dtos.FilterRequest) ([]models.JobApplication, error) {
	filter, fieldErrors := validation.ValidateFilter(req)
	if fieldErrors != nil {
		filter = dtos.DefaultFilter()
	}
	return s.Repo.FindAll(ctx, filter)
}

// GetApplicationByID returns the record or nil when absent. No envelope: reads have
// no partial-failure states beyond "absent".
func (s *ApplicationService) GetApplicationByID(ctx context.Context, id string) (*models.JobApplication, error) {
	return s.Repo.FindByID(ctx, id)
}
