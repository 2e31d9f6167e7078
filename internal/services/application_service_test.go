package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/justsurfingit/job-application-tracker/internal/dtos"
	"github.com/justsurfingit/job-application-tracker/internal/models"
	"github.com/justsurfingit/job-application-tracker/internal/repository"
)

type testEnv struct {
	db          *gorm.DB
	service     *ApplicationService
	invalidated int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.JobApplication{}))

	env := &testEnv{db: db}
	repo := repository.NewApplicationRepository(db, false)
	env.service = NewApplicationService(repo, func() { env.invalidated++ })
	return env
}

func (e *testEnv) count(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&models.JobApplication{}).Count(&n).Error)
	return n
}

func acmeRequest() dtos.CreateApplicationRequest {
	return dtos.CreateApplicationRequest{
		CompanyName:     "Acme",
		JobTitle:        "Engineer",
		Status:          "APPLIED",
		Location:        "Remote",
		ApplicationDate: "2024-01-10",
		Notes:           "",
	}
}

func TestCreateApplication(t *testing.T) {
	t.Run("valid input creates a record and marks the list stale", func(t *testing.T) {
		env := newTestEnv(t)

		result := env.service.CreateApplication(context.Background(), acmeRequest())
		require.True(t, result.Success)
		require.NotNil(t, result.Data)

		assert.Equal(t, "Acme", result.Data.CompanyName)
		assert.Equal(t, models.StatusApplied, result.Data.Status)
		assert.NotEmpty(t, result.Data.ID)
		assert.False(t, result.Data.CreatedAt.IsZero())
		assert.Equal(t, 1, env.invalidated)
	})

	t.Run("invalid input returns field errors and no store call occurs", func(t *testing.T) {
		env := newTestEnv(t)

		req := acmeRequest()
		req.Status = "INVALID_STATUS"

		result := env.service.CreateApplication(context.Background(), req)
		require.False(t, result.Success)
		assert.Equal(t, "Validation failed", result.Error)
		assert.Contains(t, result.FieldErrors, "status")

		assert.Equal(t, int64(0), env.count(t))
		assert.Equal(t, 0, env.invalidated)
	})

	t.Run("round-trip: fetch by returned id yields the same record", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()

		result := env.service.CreateApplication(ctx, acmeRequest())
		require.True(t, result.Success)

		fetched, err := env.service.GetApplicationByID(ctx, result.Data.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)

		assert.Equal(t, result.Data.ID, fetched.ID)
		assert.Equal(t, result.Data.CompanyName, fetched.CompanyName)
		assert.Equal(t, result.Data.JobTitle, fetched.JobTitle)
		assert.Equal(t, result.Data.Status, fetched.Status)
		assert.Equal(t, result.Data.Location, fetched.Location)
		assert.Equal(t, result.Data.SalaryRange, fetched.SalaryRange)
		assert.Equal(t, result.Data.Notes, fetched.Notes)
		assert.True(t, result.Data.ApplicationDate.Equal(fetched.ApplicationDate))
		assert.WithinDuration(t, result.Data.CreatedAt, fetched.CreatedAt, time.Second)
		assert.WithinDuration(t, result.Data.UpdatedAt, fetched.UpdatedAt, time.Second)
	})
}

func TestUpdateApplication(t *testing.T) {
	t.Run("updates status and leaves other fields unchanged", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()

		created := env.service.CreateApplication(ctx, acmeRequest())
		require.True(t, created.Success)

		time.Sleep(50 * time.Millisecond)

		status := "INTERVIEW"
		result := env.service.UpdateApplication(ctx, dtos.UpdateApplicationRequest{
			ID:     created.Data.ID,
			Status: &status,
		})
		require.True(t, result.Success)

		assert.Equal(t, models.StatusInterview, result.Data.Status)
		assert.Equal(t, created.Data.CompanyName, result.Data.CompanyName)
		assert.Equal(t, created.Data.Location, result.Data.Location)
		assert.True(t, result.Data.UpdatedAt.After(created.Data.UpdatedAt))
		assert.Equal(t, 2, env.invalidated)
	})

	t.Run("well-formed id not in the store fails without panicking", func(t *testing.T) {
		env := newTestEnv(t)

		status := "OFFER"
		result := env.service.UpdateApplication(context.Background(), dtos.UpdateApplicationRequest{
			ID:     "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			Status: &status,
		})
		require.False(t, result.Success)
		assert.Equal(t, ErrMsgNotFound, result.Error)
		assert.Nil(t, result.FieldErrors)
		assert.Equal(t, 0, env.invalidated)
	})

	t.Run("malformed id is a field error", func(t *testing.T) {
		env := newTestEnv(t)

		result := env.service.UpdateApplication(context.Background(), dtos.UpdateApplicationRequest{ID: "123"})
		require.False(t, result.Success)
		assert.Contains(t, result.FieldErrors, "id")
	})
}

func TestDeleteApplication(t *testing.T) {
	t.Run("removes the record", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()

		created := env.service.CreateApplication(ctx, acmeRequest())
		require.True(t, created.Success)

		result := env.service.DeleteApplication(ctx, created.Data.ID)
		require.True(t, result.Success)
		assert.Equal(t, 2, env.invalidated)

		fetched, err := env.service.GetApplicationByID(ctx, created.Data.ID)
		require.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("deleting a nonexistent id twice yields the same envelope", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()

		first := env.service.DeleteApplication(ctx, "f47ac10b-58cc-4372-a567-0e02b2c3d479")
		second := env.service.DeleteApplication(ctx, "f47ac10b-58cc-4372-a567-0e02b2c3d479")

		assert.False(t, first.Success)
		assert.Equal(t, ErrMsgNotFound, first.Error)
		assert.Equal(t, first, second)
		assert.Equal(t, 0, env.invalidated)
	})
}

func TestGetApplications(t *testing.T) {
	seedSet := func(t *testing.T, env *testEnv) {
		ctx := context.Background()
		for _, app := range []dtos.CreateApplicationRequest{
			{CompanyName: "Acme", JobTitle: "Engineer", Status: "APPLIED", Location: "Remote", ApplicationDate: "2024-01-10"},
			{CompanyName: "Globex", JobTitle: "Analyst", Status: "REJECTED", Location: "NYC", ApplicationDate: "2024-01-12"},
			{CompanyName: "Initech", JobTitle: "Manager", Status: "REJECTED", Location: "Austin", ApplicationDate: "2024-01-08"},
		} {
			result := env.service.CreateApplication(ctx, app)
			require.True(t, result.Success)
		}
	}

	t.Run("status filter returns only matching records in date order", func(t *testing.T) {
		env := newTestEnv(t)
		seedSet(t, env)

		apps, err := env.service.GetApplications(context.Background(), dtos.FilterRequest{Status: "REJECTED"})
		require.NoError(t, err)
		require.Len(t, apps, 2)
		assert.Equal(t, "Globex", apps[0].CompanyName)
		assert.Equal(t, "Initech", apps[1].CompanyName)
	})

	t.Run("invalid filter falls back to the default filter", func(t *testing.T) {
		env := newTestEnv(t)
		seedSet(t, env)
		ctx := context.Background()

		invalid, err := env.service.GetApplications(ctx, dtos.FilterRequest{Status: "NOPE", SortBy: "salary"})
		require.NoError(t, err)

		unfiltered, err := env.service.GetApplications(ctx, dtos.FilterRequest{})
		require.NoError(t, err)

		assert.Equal(t, unfiltered, invalid)
		require.Len(t, invalid, 3)
		assert.Equal(t, "Globex", invalid[0].CompanyName)
	})
}
