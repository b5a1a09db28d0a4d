package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetcareer-backend/internal/domain"
	"vetcareer-backend/internal/repository/fixture"
	"vetcareer-backend/internal/repository/memory"
	"vetcareer-backend/internal/usecase"
)

func testApplicant() domain.Applicant {
	return domain.Applicant{
		Name:  "John Veteran",
		Place: "Austin",
		Age:   "34",
		Email: "veteran@example.com",
		Phone: "555-0101",
	}
}

func TestApply(t *testing.T) {
	jobRepo := fixture.NewJobRepository()
	ctx := context.WithValue(context.Background(), domain.KeyUserID, "1")

	jobs, err := jobRepo.Fetch(context.Background())
	require.NoError(t, err)

	t.Run("applying books the fixed interview slot", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(memory.NewApplicationRepository(), jobRepo)

		app, err := uc.Apply(ctx, jobs[0].ID, testApplicant())
		require.NoError(t, err)
		assert.Equal(t, jobs[0].Title, app.JobTitle)
		assert.Equal(t, jobs[0].Company, app.Company)
		assert.Equal(t, "10:00 AM, 12th June 2025", app.InterviewTime)
		assert.Equal(t, "9:45 AM", app.ExpectedArrival)
		assert.Equal(t, "Resume", app.RequiredDocuments)
		assert.Equal(t, domain.ApplicationStatusScheduled, app.Status)
	})

	t.Run("unknown job is rejected", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(memory.NewApplicationRepository(), jobRepo)

		_, err := uc.Apply(ctx, "no-such-job", testApplicant())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("sixth application is rejected", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(memory.NewApplicationRepository(), jobRepo)

		for i := 0; i < domain.MaxApplicationsPerIdentity; i++ {
			_, err := uc.Apply(ctx, jobs[i].ID, testApplicant())
			require.NoError(t, err)
		}

		_, err := uc.Apply(ctx, jobs[5].ID, testApplicant())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "You can apply for only 5 jobs")
	})

	t.Run("missing identity is rejected", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(memory.NewApplicationRepository(), jobRepo)

		_, err := uc.Apply(context.Background(), jobs[0].ID, testApplicant())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Authentication required")
	})
}

func TestListMyApplications(t *testing.T) {
	jobRepo := fixture.NewJobRepository()
	uc := usecase.NewApplicationUsecase(memory.NewApplicationRepository(), jobRepo)

	jobs, err := jobRepo.Fetch(context.Background())
	require.NoError(t, err)

	mine := context.WithValue(context.Background(), domain.KeyUserID, "1")
	theirs := context.WithValue(context.Background(), domain.KeyUserID, "2")

	_, err = uc.Apply(mine, jobs[0].ID, testApplicant())
	require.NoError(t, err)
	_, err = uc.Apply(mine, jobs[1].ID, testApplicant())
	require.NoError(t, err)
	_, err = uc.Apply(theirs, jobs[2].ID, testApplicant())
	require.NoError(t, err)

	apps, err := uc.ListMyApplications(mine)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, jobs[0].ID, apps[0].JobID)
	assert.Equal(t, jobs[1].ID, apps[1].JobID)

	others, err := uc.ListMyApplications(theirs)
	require.NoError(t, err)
	assert.Len(t, others, 1)
}
