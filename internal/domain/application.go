package domain

import (
	"context"
	"time"
)

// MaxApplicationsPerIdentity caps how many jobs one identity may apply to.
const MaxApplicationsPerIdentity = 5

// ApplicationStatusScheduled is the only status a mock application ever
// reaches: applying books the interview immediately.
const ApplicationStatusScheduled = "Scheduled"

// Applicant holds the details entered on the application form.
type Applicant struct {
	Name  string `json:"name" binding:"required"`
	Place string `json:"place" binding:"required"`
	Age   string `json:"age" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

// JobApplication records one application with its booked interview slot.
type JobApplication struct {
	ID                string    `json:"id"`
	IdentityID        string    `json:"identity_id"`
	JobID             string    `json:"job_id"`
	JobTitle          string    `json:"job_title"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	Salary            string    `json:"salary"`
	Applicant         Applicant `json:"applicant"`
	InterviewTime     string    `json:"interview_time"`
	ExpectedArrival   string    `json:"expected_arrival"`
	RequiredDocuments string    `json:"required_documents"`
	Status            string    `json:"status"`
	AppliedAt         time.Time `json:"applied_at"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *JobApplication) error
	CountByIdentity(ctx context.Context, identityID string) (int, error)
	FetchByIdentity(ctx context.Context, identityID string) ([]JobApplication, error)
}

type ApplicationUsecase interface {
	// Apply books an interview for the job on behalf of the identity in
	// ctx. Fails with a conflict once the identity holds
	// MaxApplicationsPerIdentity applications.
	Apply(ctx context.Context, jobID string, applicant Applicant) (*JobApplication, error)
	ListMyApplications(ctx context.Context) ([]JobApplication, error)
}
