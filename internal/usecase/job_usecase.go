package usecase

import (
	"context"
	"sort"
	"strings"

	"vetcareer-backend/internal/domain"
	"vetcareer-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// ListJobs applies every active criterion conjunctively. Search matches
// case-insensitively against title, company and description; location is a
// plain substring match; industry, job type and experience level must match
// exactly. Matching preserves the collection's order unless sortByMatch
// reorders by match score descending.
func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter, sortByMatch bool) ([]domain.JobListing, error) {
	jobs, err := u.jobRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if !filter.IsZero() {
		filtered := make([]domain.JobListing, 0, len(jobs))
		for _, job := range jobs {
			if matchesJobFilter(job, filter) {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}

	if sortByMatch {
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].MatchScore > jobs[j].MatchScore
		})
	}

	return jobs, nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id string) (*domain.JobListing, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func matchesJobFilter(job domain.JobListing, f domain.JobFilter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(job.Title), needle) &&
			!strings.Contains(strings.ToLower(job.Company), needle) &&
			!strings.Contains(strings.ToLower(job.Description), needle) {
			return false
		}
	}
	if f.Location != "" && !strings.Contains(job.Location, f.Location) {
		return false
	}
	if f.Industry != "" && job.Industry != f.Industry {
		return false
	}
	if f.JobType != "" && job.JobType != f.JobType {
		return false
	}
	if f.ExperienceLevel != "" && job.ExperienceLevel != f.ExperienceLevel {
		return false
	}
	return true
}
