// Package validation checks and normalizes the three input kinds (create, update,
// filter) before anything reaches the store. Validation is total: it never returns a
// Go error, only a FieldErrors map keyed by JSON field name.
package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/justsurfingit/job-application-tracker/internal/dtos"
	"github.com/justsurfingit/job-application-tracker/internal/models"
)

// FieldErrors collects validation messages per field. Empty map means valid input.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the JSON key the client sent, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// messages maps field+constraint to the message the UI shows inline.
var messages = map[string]map[string]string{
	"company_name": {
		"required": "Company name is required",
		"min":      "Company name is required",
		"max":      "Company name must be 200 characters or less",
	},
	"job_title": {
		"required": "Job title is required",
		"min":      "Job title is required",
		"max":      "Job title must be 200 characters or less",
	},
	"location": {
		"required": "Location is required",
		"min":      "Location is required",
		"max":      "Location must be 200 characters or less",
	},
	"salary_range": {
		"max": "Salary range must be 100 characters or less",
	},
	"notes": {
		"max": "Notes must be 2000 characters or less",
	},
}

const (
	statusMessage = "Status must be one of APPLIED, INTERVIEW, OFFER, REJECTED, GHOSTED"
	dateMessage   = "Valid application date is required"
	idMessage     = "Invalid application ID"
)

// collectStructErrors runs the tag-based constraints and folds the result into errs.
func collectStructErrors(input any, errs FieldErrors) {
	err := validate.Struct(input)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator only returns InvalidValidationError for non-struct input,
		// which never happens with our DTOs.
		return
	}
	for _, fe := range verrs {
		msg := messages[fe.Field()][fe.Tag()]
		if msg == "" {
			msg = "Invalid value"
		}
		errs.add(fe.Field(), msg)
	}
}

// Accepted textual date layouts, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ValidateCreate checks a raw creation payload and returns the normalized input, or
// the per-field errors when any field is out of bounds.
func ValidateCreate(req dtos.CreateApplicationRequest) (dtos.CreateInput, FieldErrors) {
	errs := FieldErrors{}
	collectStructErrors(req, errs)

	status := models.ApplicationStatus(req.Status)
	if !status.IsValid() {
		errs.add("status", statusMessage)
	}

	date, ok := parseDate(req.ApplicationDate)
	if !ok {
		errs.add("application_date", dateMessage)
	}

	if len(errs) > 0 {
		return dtos.CreateInput{}, errs
	}

	return dtos.CreateInput{
		CompanyName:     req.CompanyName,
		JobTitle:        req.JobTitle,
		Status:          status,
		Location:        req.Location,
		SalaryRange:     req.SalaryRange,
		ApplicationDate: date,
		Notes:           req.Notes,
	}, nil
}

// ValidateUpdate checks a raw update payload: the ID must be a well-formed UUID and
// every present field must satisfy the same bounds as on creation.
func ValidateUpdate(req dtos.UpdateApplicationRequest) (dtos.UpdateInput, FieldErrors) {
	errs := FieldErrors{}
	collectStructErrors(req, errs)

	if _, err := uuid.Parse(req.ID); err != nil {
		errs.add("id", idMessage)
	}

	var status *models.ApplicationStatus
	if req.Status != nil {
		s := models.ApplicationStatus(*req.Status)
		if !s.IsValid() {
			errs.add("status", statusMessage)
		} else {
			status = &s
		}
	}

	var date *time.Time
	if req.ApplicationDate != nil {
		d, ok := parseDate(*req.ApplicationDate)
		if !ok {
			errs.add("application_date", dateMessage)
		} else {
			date = &d
		}
	}

	if len(errs) > 0 {
		return dtos.UpdateInput{}, errs
	}

	return dtos.UpdateInput{
		ID:              req.ID,
		CompanyName:     req.CompanyName,
		JobTitle:        req.JobTitle,
		Status:          status,
		Location:        req.Location,
		SalaryRange:     req.SalaryRange,
		ApplicationDate: date,
		Notes:           req.Notes,
	}, nil
}

// ValidateFilter checks a raw filter payload. All fields are optional; missing sort
// fields pick up the applicationDate-descending defaults. Whitespace-only search is
// treated as no search at all.
func ValidateFilter(req dtos.FilterRequest) (dtos.FilterInput, FieldErrors) {
	errs := FieldErrors{}
	out := dtos.DefaultFilter()

	if req.Status != "" {
		status := models.ApplicationStatus(req.Status)
		if !status.IsValid() {
			errs.add("status", statusMessage)
		} else {
			out.Status = status
		}
	}

	out.Search = strings.TrimSpace(req.Search)

	switch req.SortBy {
	case "", dtos.SortByApplicationDate:
		// default already set
	case dtos.SortByCompanyName:
		out.SortBy = dtos.SortByCompanyName
	default:
		errs.add("sort_by", "Sort field must be applicationDate or companyName")
	}

	switch req.SortOrder {
	case "", dtos.SortDesc:
		// default already set
	case dtos.SortAsc:
		out.SortOrder = dtos.SortAsc
	default:
		errs.add("sort_order", "Sort order must be asc or desc")
	}

	if len(errs) > 0 {
		return dtos.FilterInput{}, errs
	}
	return out, nil
}
