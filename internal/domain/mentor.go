package domain

import "context"

// Mentor availability values.
const (
	AvailabilityWeekly   = "Weekly"
	AvailabilityBiWeekly = "Bi-weekly"
	AvailabilityMonthly  = "Monthly"
)

// MentorProfile is a static mentor directory record, immutable after
// startup like JobListing.
type MentorProfile struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Industry     string   `json:"industry"`
	Experience   string   `json:"experience"` // display bucket, e.g. "10+ years"
	Background   string   `json:"background"`
	Skills       []string `json:"skills"`
	Availability string   `json:"availability"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	ImageURL     string   `json:"image_url"`
	IsVeteran    bool     `json:"is_veteran"`
}

// MentorFilter holds the mentor directory criteria; all fields optional.
type MentorFilter struct {
	Search       string `json:"search"`
	Industry     string `json:"industry"`
	Experience   string `json:"experience"`
	Availability string `json:"availability"`
}

func (f MentorFilter) IsZero() bool {
	return f == MentorFilter{}
}

type MentorRepository interface {
	Fetch(ctx context.Context) ([]MentorProfile, error)
	GetByID(ctx context.Context, id string) (*MentorProfile, error)
}

type MentorUsecase interface {
	ListMentors(ctx context.Context, filter MentorFilter) ([]MentorProfile, error)
	GetMentorDetails(ctx context.Context, id string) (*MentorProfile, error)
}
