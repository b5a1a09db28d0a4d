// Package fixture holds the static in-memory record collections the
// platform serves. Fixtures stand in for backend responses: they are built
// once at startup and never mutated afterwards.
package fixture

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"vetcareer-backend/internal/domain"
)

// daysAgo renders a relative-day offset the way the job board displays it.
// Evaluated once at fixture creation, so the strings stay stable for the
// process lifetime.
func daysAgo(days int) string {
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	}
	return fmt.Sprintf("%d days ago", days)
}

type jobRepository struct {
	jobs []domain.JobListing
}

// NewJobRepository builds the job board's fixture set. IDs are fresh UUIDs
// per process; everything else is fixed.
func NewJobRepository() domain.JobRepository {
	return &jobRepository{jobs: buildJobs()}
}

func (r *jobRepository) Fetch(ctx context.Context) ([]domain.JobListing, error) {
	out := make([]domain.JobListing, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.JobListing, error) {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			job := r.jobs[i]
			return &job, nil
		}
	}
	return nil, domain.ErrNotFound
}

func buildJobs() []domain.JobListing {
	return []domain.JobListing{
		{
			ID:          uuid.NewString(),
			Title:       "Security Operations Manager",
			Company:     "SecureTech Solutions",
			Location:    "Dallas, TX",
			JobType:     domain.JobTypeFullTime,
			Salary:      "$85,000 - $110,000",
			Description: "Looking for a seasoned security professional to oversee our security operations center. This role requires leadership, attention to detail, and experience in threat assessment and mitigation. Veterans with military security experience are highly encouraged to apply.",
			Requirements: []string{
				"Bachelor's degree in security management or related field",
				"5+ years of experience in security operations",
				"Excellent leadership and communication skills",
				"Experience with security protocols and procedures",
			},
			Skills:            []string{"Leadership", "Security Operations", "Risk Assessment", "Team Management", "Crisis Response"},
			PostedDate:        daysAgo(2),
			Industry:          "Technology",
			ExperienceLevel:   domain.ExperienceMid,
			Education:         "Bachelor's",
			Benefits:          []string{"Health insurance", "Retirement plan", "Paid time off", "Professional development"},
			IsVeteranFriendly: true,
			MatchScore:        92,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Project Manager",
			Company:     "BuildCorp Industries",
			Location:    "Remote",
			JobType:     domain.JobTypeFullTime,
			Salary:      "$75,000 - $95,000",
			Description: "BuildCorp is seeking a detail-oriented Project Manager to coordinate complex construction projects. Your military experience in supply operations will be valuable in this role as you coordinate resources, track progress, and ensure deadlines are met.",
			Requirements: []string{
				"Bachelor's degree in management, engineering, or related field",
				"3+ years of experience in project management",
				"PMP certification (preferred but not required)",
				"Experience with project management software",
			},
			Skills:            []string{"Project Planning", "Resource Allocation", "Risk Management", "Stakeholder Communication", "Leadership"},
			PostedDate:        daysAgo(5),
			Industry:          "Construction",
			ExperienceLevel:   domain.ExperienceMid,
			Education:         "Bachelor's",
			Benefits:          []string{"Health insurance", "Retirement plan", "Paid time off", "Flexible schedule"},
			IsVeteranFriendly: true,
			MatchScore:        88,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Logistics Coordinator",
			Company:     "Global Supply Systems",
			Location:    "Houston, TX",
			JobType:     domain.JobTypeFullTime,
			Salary:      "$60,000 - $75,000",
			Description: "Global Supply Systems is looking for a Logistics Coordinator with experience in supply chain management. This role involves coordinating shipments, managing inventory, and ensuring efficient operations. Military logistics experience is highly valued.",
			Requirements: []string{
				"Associate's or Bachelor's degree in logistics, supply chain, or related field",
				"2+ years of experience in logistics or supply chain management",
				"Knowledge of logistics software and systems",
				"Strong analytical and problem-solving skills",
			},
			Skills:            []string{"Supply Chain Management", "Inventory Control", "Logistics Planning", "Problem Solving", "Attention to Detail"},
			PostedDate:        daysAgo(1),
			Industry:          "Logistics",
			ExperienceLevel:   domain.ExperienceEntry,
			Education:         "Associate's",
			Benefits:          []string{"Health insurance", "Retirement plan", "Paid time off", "Employee discount program"},
			IsVeteranFriendly: true,
			MatchScore:        95,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Information Security Analyst",
			Company:     "CyberDefend",
			Location:    "San Diego, CA",
			JobType:     domain.JobTypeFullTime,
			Salary:      "$90,000 - $115,000",
			Description: "CyberDefend is seeking an Information Security Analyst to help protect our systems and data. This role involves monitoring security systems, identifying vulnerabilities, and implementing security measures. Veterans with cybersecurity experience are encouraged to apply.",
			Requirements: []string{
				"Bachelor's degree in cybersecurity, IT, or related field",
				"3+ years of experience in information security",
				"Security certifications (CISSP, Security+, etc.)",
				"Knowledge of security frameworks and compliance regulations",
			},
			Skills:            []string{"Network Security", "Vulnerability Assessment", "Security Protocols", "Incident Response", "Compliance"},
			PostedDate:        daysAgo(3),
			Industry:          "Technology",
			ExperienceLevel:   domain.ExperienceMid,
			Education:         "Bachelor's",
			Benefits:          []string{"Health insurance", "Retirement plan", "Paid time off", "Professional development"},
			IsVeteranFriendly: true,
			MatchScore:        87,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Healthcare Administrator",
			Company:     "Veterans Health Network",
			Location:    "San Antonio, TX",
			JobType:     domain.JobTypeFullTime,
			Salary:      "$70,000 - $90,000",
			Description: "Veterans Health Network is looking for a Healthcare Administrator to oversee daily operations at our facility. This role involves coordinating staff, managing resources, and ensuring quality patient care. Military medical administrative experience is highly valued.",
			Requirements: []string{
				"Bachelor's degree in healthcare administration or related field",
				"3+ years of experience in healthcare administration",
				"Knowledge of healthcare regulations and compliance",
				"Strong leadership and communication skills",
			},
			Skills:            []string{"Healthcare Operations", "Staff Management", "Regulatory Compliance", "Budget Administration", "Strategic Planning"},
			PostedDate:        daysAgo(7),
			Industry:          "Healthcare",
			ExperienceLevel:   domain.ExperienceMid,
			Education:         "Bachelor's",
			Benefits:          []string{"Health insurance", "Retirement plan", "Paid time off", "Tuition assistance"},
			IsVeteranFriendly: true,
			MatchScore:        83,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Operations Analyst",
			Company:     "Strategic Consulting Group",
			Location:    "Chicago, IL",
			JobType:     domain.JobTypeFullTime,
			Salary:      "$65,000 - $85,000",
			Description: "Strategic Consulting Group is seeking an Operations Analyst to help optimize client operations. This role involves data analysis, process improvement, and developing recommendations. Veterans with experience in operations and analysis are encouraged to apply.",
			Requirements: []string{
				"Bachelor's degree in business, operations, or related field",
				"2+ years of experience in operations analysis",
				"Strong analytical and problem-solving skills",
				"Proficiency in data analysis tools",
			},
			Skills:            []string{"Data Analysis", "Process Improvement", "Problem Solving", "Strategic Thinking", "Project Management"},
			PostedDate:        daysAgo(4),
			Industry:          "Consulting",
			ExperienceLevel:   domain.ExperienceEntry,
			Education:         "Bachelor's",
			Benefits:          []string{"Health insurance", "Retirement plan", "Paid time off", "Professional development"},
			IsVeteranFriendly: false,
			MatchScore:        78,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Leadership Development Trainer",
			Company:     "Elite Leadership Academy",
			Location:    "Remote",
			JobType:     domain.JobTypeFullTime,
			Salary:      "$70,000 - $90,000",
			Description: "Elite Leadership Academy is looking for a Leadership Development Trainer to design and deliver leadership training programs. This role involves creating curriculum, facilitating workshops, and coaching participants. Military leadership experience is highly valued.",
			Requirements: []string{
				"Bachelor's degree in education, business, or related field",
				"5+ years of leadership experience",
				"Experience in training and development",
				"Strong communication and presentation skills",
			},
			Skills:            []string{"Leadership Training", "Curriculum Development", "Public Speaking", "Coaching", "Facilitation"},
			PostedDate:        daysAgo(10),
			Industry:          "Education",
			ExperienceLevel:   domain.ExperienceSenior,
			Education:         "Bachelor's",
			Benefits:          []string{"Health insurance", "Retirement plan", "Paid time off", "Flexible schedule"},
			IsVeteranFriendly: true,
			MatchScore:        90,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Mechanical Engineer",
			Company:     "Advanced Defense Systems",
			Location:    "Huntsville, AL",
			JobType:     domain.JobTypeFullTime,
			Salary:      "$85,000 - $110,000",
			Description: "Advanced Defense Systems is seeking a Mechanical Engineer to design and develop defense-related products. This role involves CAD design, prototype testing, and product improvement. Veterans with engineering experience are encouraged to apply.",
			Requirements: []string{
				"Bachelor's degree in mechanical engineering",
				"3+ years of experience in mechanical engineering",
				"Proficiency in CAD software",
				"Experience with product development lifecycle",
			},
			Skills:            []string{"Mechanical Design", "CAD", "Product Development", "Testing", "Quality Control"},
			PostedDate:        daysAgo(8),
			Industry:          "Manufacturing",
			ExperienceLevel:   domain.ExperienceMid,
			Education:         "Bachelor's",
			Benefits:          []string{"Health insurance", "Retirement plan", "Paid time off", "Relocation assistance"},
			IsVeteranFriendly: true,
			MatchScore:        75,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Financial Advisor",
			Company:     "Veterans Financial Services",
			Location:    "Phoenix, AZ",
			JobType:     domain.JobTypeFullTime,
			Salary:      "$60,000 - $80,000 + Commission",
			Description: "Veterans Financial Services is looking for a Financial Advisor to help clients plan for their financial future. This role involves client consultations, financial planning, and investment recommendations. Veterans with leadership and communication skills are encouraged to apply.",
			Requirements: []string{
				"Bachelor's degree in finance, business, or related field",
				"Series 7 and 66 licenses (or willing to obtain)",
				"Strong communication and interpersonal skills",
				"Customer service orientation",
			},
			Skills:            []string{"Financial Planning", "Client Relations", "Investment Strategies", "Communication", "Problem Solving"},
			PostedDate:        daysAgo(6),
			Industry:          "Finance",
			ExperienceLevel:   domain.ExperienceEntry,
			Education:         "Bachelor's",
			Benefits:          []string{"Health insurance", "Retirement plan", "Paid time off", "Commission structure"},
			IsVeteranFriendly: true,
			MatchScore:        72,
		},
		{
			ID:          uuid.NewString(),
			Title:       "IT Project Manager",
			Company:     "Tech Innovations",
			Location:    "Denver, CO",
			JobType:     domain.JobTypeFullTime,
			Salary:      "$90,000 - $115,000",
			Description: "Tech Innovations is seeking an IT Project Manager to oversee technology implementation projects. This role involves coordinating teams, managing timelines, and ensuring successful project delivery. Veterans with project management experience are encouraged to apply.",
			Requirements: []string{
				"Bachelor's degree in IT, computer science, or related field",
				"5+ years of experience in IT project management",
				"PMP or Agile certification preferred",
				"Experience with IT infrastructure and software implementation",
			},
			Skills:            []string{"Project Management", "IT Infrastructure", "Agile Methodology", "Stakeholder Management", "Risk Mitigation"},
			PostedDate:        daysAgo(12),
			Industry:          "Technology",
			ExperienceLevel:   domain.ExperienceSenior,
			Education:         "Bachelor's",
			Benefits:          []string{"Health insurance", "Retirement plan", "Paid time off", "Remote work options"},
			IsVeteranFriendly: false,
			MatchScore:        80,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Emergency Management Specialist",
			Company:     "National Preparedness Agency",
			Location:    "Washington, DC",
			JobType:     domain.JobTypeFullTime,
			Salary:      "$75,000 - $95,000",
			Description: "National Preparedness Agency is looking for an Emergency Management Specialist to help develop and implement emergency response plans. This role involves risk assessment, planning, and coordination with various stakeholders. Military experience in emergency operations is highly valued.",
			Requirements: []string{
				"Bachelor's degree in emergency management or related field",
				"3+ years of experience in emergency management",
				"Knowledge of FEMA guidelines and procedures",
				"Experience with emergency response operations",
			},
			Skills:            []string{"Emergency Planning", "Risk Assessment", "Crisis Management", "Stakeholder Coordination", "Policy Implementation"},
			PostedDate:        daysAgo(9),
			Industry:          "Government",
			ExperienceLevel:   domain.ExperienceMid,
			Education:         "Bachelor's",
			Benefits:          []string{"Health insurance", "Retirement plan", "Paid time off", "Federal benefits package"},
			IsVeteranFriendly: true,
			MatchScore:        94,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Human Resources Manager",
			Company:     "Veterans First Corporation",
			Location:    "Austin, TX",
			JobType:     domain.JobTypeFullTime,
			Salary:      "$80,000 - $100,000",
			Description: "Veterans First Corporation is seeking a Human Resources Manager to oversee HR functions and programs. This role involves recruitment, employee relations, and policy development. Veterans with leadership and people management experience are encouraged to apply.",
			Requirements: []string{
				"Bachelor's degree in human resources or related field",
				"5+ years of experience in human resources",
				"PHR or SHRM certification preferred",
				"Knowledge of HR best practices and regulations",
			},
			Skills:            []string{"Recruitment", "Employee Relations", "Policy Development", "Training", "Performance Management"},
			PostedDate:        daysAgo(15),
			Industry:          "Technology",
			ExperienceLevel:   domain.ExperienceSenior,
			Education:         "Bachelor's",
			Benefits:          []string{"Health insurance", "Retirement plan", "Paid time off", "Professional development"},
			IsVeteranFriendly: true,
			MatchScore:        85,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Supply Chain Analyst",
			Company:     "Meridian Distribution",
			Location:    "Memphis, TN",
			JobType:     domain.JobTypeContract,
			Salary:      "$55,000 - $70,000",
			Description: "Meridian Distribution is hiring a Supply Chain Analyst to monitor inventory flows and improve fulfillment performance across our regional warehouses. Veterans with supply and transportation backgrounds are encouraged to apply.",
			Requirements: []string{
				"Associate's or Bachelor's degree in supply chain or related field",
				"1+ years of experience in inventory or distribution analysis",
				"Comfort with spreadsheets and reporting tools",
				"Strong attention to detail",
			},
			Skills:            []string{"Inventory Analysis", "Forecasting", "Reporting", "Process Improvement", "Communication"},
			PostedDate:        daysAgo(0),
			Industry:          "Logistics",
			ExperienceLevel:   domain.ExperienceEntry,
			Education:         "Associate's",
			Benefits:          []string{"Health insurance", "Paid time off", "Contract extension option"},
			IsVeteranFriendly: true,
			MatchScore:        81,
		},
	}
}
