package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job type values carried by JobListing.JobType.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeTemporary  = "Temporary"
	JobTypeInternship = "Internship"
)

// Experience level values carried by JobListing.ExperienceLevel.
const (
	ExperienceEntry     = "Entry"
	ExperienceMid       = "Mid"
	ExperienceSenior    = "Senior"
	ExperienceExecutive = "Executive"
)

// JobListing is a static job record. Listings are built once at startup and
// never mutated; MatchScore is precomputed per record, not derived from the
// viewer's profile.
type JobListing struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Company           string   `json:"company"`
	Location          string   `json:"location"`
	JobType           string   `json:"job_type"`
	Salary            string   `json:"salary"`
	Description       string   `json:"description"`
	Requirements      []string `json:"requirements"`
	Skills            []string `json:"skills"`
	PostedDate        string   `json:"posted_date"`
	Industry          string   `json:"industry"`
	ExperienceLevel   string   `json:"experience_level"`
	Education         string   `json:"education"`
	Benefits          []string `json:"benefits"`
	IsVeteranFriendly bool     `json:"is_veteran_friendly"`
	MatchScore        int      `json:"match_score"` // 0-100
}

// JobFilter holds the user-entered criteria for the job board. Every field
// is independently optional; an empty filter selects the whole collection.
type JobFilter struct {
	Search          string `json:"search"`
	Location        string `json:"location"`
	Industry        string `json:"industry"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
}

// IsZero reports whether no criterion is active.
func (f JobFilter) IsZero() bool {
	return f == JobFilter{}
}

type JobRepository interface {
	Fetch(ctx context.Context) ([]JobListing, error)
	GetByID(ctx context.Context, id string) (*JobListing, error)
}

type JobUsecase interface {
	// ListJobs returns the listings matching filter, preserving insertion
	// order. With sortByMatch the result is reordered by MatchScore
	// descending for display; the filter itself never reorders.
	ListJobs(ctx context.Context, filter JobFilter, sortByMatch bool) ([]JobListing, error)
	GetJobDetails(ctx context.Context, id string) (*JobListing, error)
}
