package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vetcareer-backend/internal/domain"
	"vetcareer-backend/pkg/apperror"
)

// Every booked interview lands on the same slot; the scheduling backend is
// mocked.
const (
	interviewTime     = "10:00 AM, 12th June 2025"
	expectedArrival   = "9:45 AM"
	requiredDocuments = "Resume"
)

type applicationUsecase struct {
	appRepo domain.ApplicationRepository
	jobRepo domain.JobRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo: appRepo,
		jobRepo: jobRepo,
	}
}

func (u *applicationUsecase) Apply(ctx context.Context, jobID string, applicant domain.Applicant) (*domain.JobApplication, error) {
	identityID, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	count, err := u.appRepo.CountByIdentity(ctx, identityID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if count >= domain.MaxApplicationsPerIdentity {
		return nil, apperror.Conflict(fmt.Sprintf("You can apply for only %d jobs", domain.MaxApplicationsPerIdentity))
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	app := &domain.JobApplication{
		ID:                uuid.NewString(),
		IdentityID:        identityID,
		JobID:             job.ID,
		JobTitle:          job.Title,
		Company:           job.Company,
		Location:          job.Location,
		Salary:            job.Salary,
		Applicant:         applicant,
		InterviewTime:     interviewTime,
		ExpectedArrival:   expectedArrival,
		RequiredDocuments: requiredDocuments,
		Status:            domain.ApplicationStatusScheduled,
		AppliedAt:         time.Now(),
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (u *applicationUsecase) ListMyApplications(ctx context.Context) ([]domain.JobApplication, error) {
	identityID, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	apps, err := u.appRepo.FetchByIdentity(ctx, identityID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func identityFromContext(ctx context.Context) (string, error) {
	identityID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || identityID == "" {
		return "", apperror.Unauthorized("Authentication required")
	}
	return identityID, nil
}
