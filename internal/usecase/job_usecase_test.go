package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetcareer-backend/internal/domain"
	"vetcareer-backend/internal/repository/fixture"
	"vetcareer-backend/internal/usecase"
)

func TestListJobsFiltering(t *testing.T) {
	uc := usecase.NewJobUsecase(fixture.NewJobRepository())
	ctx := context.Background()

	t.Run("empty filter returns the whole collection in order", func(t *testing.T) {
		jobs, err := uc.ListJobs(ctx, domain.JobFilter{}, false)
		require.NoError(t, err)
		assert.Len(t, jobs, 13)
		assert.Equal(t, "Security Operations Manager", jobs[0].Title)
	})

	t.Run("search is case-insensitive over title, company and description", func(t *testing.T) {
		jobs, err := uc.ListJobs(ctx, domain.JobFilter{Search: "Logistics"}, false)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Logistics Coordinator", jobs[0].Title)

		lower, err := uc.ListJobs(ctx, domain.JobFilter{Search: "logistics"}, false)
		require.NoError(t, err)
		assert.Equal(t, jobs, lower)
	})

	t.Run("location matches by substring", func(t *testing.T) {
		jobs, err := uc.ListJobs(ctx, domain.JobFilter{Location: "TX"}, false)
		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		for _, job := range jobs {
			assert.Contains(t, job.Location, "TX")
		}
	})

	t.Run("enum criteria match exactly", func(t *testing.T) {
		jobs, err := uc.ListJobs(ctx, domain.JobFilter{JobType: domain.JobTypeContract}, false)
		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		for _, job := range jobs {
			assert.Equal(t, domain.JobTypeContract, job.JobType)
		}

		none, err := uc.ListJobs(ctx, domain.JobFilter{JobType: "Contr"}, false)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("criteria combine conjunctively", func(t *testing.T) {
		jobs, err := uc.ListJobs(ctx, domain.JobFilter{
			Search:   "engineer",
			Industry: "Technology",
		}, false)
		require.NoError(t, err)
		for _, job := range jobs {
			assert.Equal(t, "Technology", job.Industry)
		}
	})

	t.Run("zero matches is an empty result, not an error", func(t *testing.T) {
		jobs, err := uc.ListJobs(ctx, domain.JobFilter{Search: "underwater basket weaving"}, false)
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("sort by match reorders by score descending", func(t *testing.T) {
		jobs, err := uc.ListJobs(ctx, domain.JobFilter{}, true)
		require.NoError(t, err)
		for i := 1; i < len(jobs); i++ {
			assert.GreaterOrEqual(t, jobs[i-1].MatchScore, jobs[i].MatchScore)
		}
	})

	t.Run("filtering alone never reorders", func(t *testing.T) {
		jobs, err := uc.ListJobs(ctx, domain.JobFilter{Industry: "Technology"}, false)
		require.NoError(t, err)
		all, err := uc.ListJobs(ctx, domain.JobFilter{}, false)
		require.NoError(t, err)

		var expected []string
		for _, job := range all {
			if job.Industry == "Technology" {
				expected = append(expected, job.ID)
			}
		}
		var got []string
		for _, job := range jobs {
			got = append(got, job.ID)
		}
		assert.Equal(t, expected, got)
	})
}

func TestGetJobDetails(t *testing.T) {
	uc := usecase.NewJobUsecase(fixture.NewJobRepository())
	ctx := context.Background()

	all, err := uc.ListJobs(ctx, domain.JobFilter{}, false)
	require.NoError(t, err)

	job, err := uc.GetJobDetails(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, all[0].Title, job.Title)

	_, err = uc.GetJobDetails(ctx, "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Job not found")
}
