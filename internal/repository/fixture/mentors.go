package fixture

import (
	"context"

	"vetcareer-backend/internal/domain"
)

type mentorRepository struct {
	mentors []domain.MentorProfile
}

// NewMentorRepository builds the mentor directory fixture set.
func NewMentorRepository() domain.MentorRepository {
	return &mentorRepository{mentors: buildMentors()}
}

func (r *mentorRepository) Fetch(ctx context.Context) ([]domain.MentorProfile, error) {
	out := make([]domain.MentorProfile, len(r.mentors))
	copy(out, r.mentors)
	return out, nil
}

func (r *mentorRepository) GetByID(ctx context.Context, id string) (*domain.MentorProfile, error) {
	for i := range r.mentors {
		if r.mentors[i].ID == id {
			mentor := r.mentors[i]
			return &mentor, nil
		}
	}
	return nil, domain.ErrNotFound
}

func buildMentors() []domain.MentorProfile {
	return []domain.MentorProfile{
		{
			ID:           "1",
			Name:         "Col. Rajesh Kumar (Retd.)",
			Role:         "Director of Operations",
			Company:      "Global Technologies",
			Industry:     "Technology",
			Experience:   "20+ years",
			Background:   "Served 22 years in the Indian Army before transitioning to the technology sector. Specializes in operations management and team leadership.",
			Skills:       []string{"Leadership", "Strategic Planning", "Operations Management", "Team Building", "Crisis Management"},
			Availability: domain.AvailabilityWeekly,
			Rating:       4.9,
			ReviewCount:  42,
			ImageURL:     "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			IsVeteran:    true,
		},
		{
			ID:           "2",
			Name:         "Anjali Mehta",
			Role:         "Senior HR Director",
			Company:      "Talent Solutions Inc.",
			Industry:     "Human Resources",
			Experience:   "15+ years",
			Background:   "Specializes in helping veterans showcase their military experience in resumes and interviews. Expert in talent acquisition and career development.",
			Skills:       []string{"Resume Building", "Interview Coaching", "Career Planning", "HR Best Practices", "Networking"},
			Availability: domain.AvailabilityBiWeekly,
			Rating:       4.8,
			ReviewCount:  38,
			ImageURL:     "https://images.pexels.com/photos/3796217/pexels-photo-3796217.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			IsVeteran:    false,
		},
		{
			ID:           "3",
			Name:         "Cdr. Vikram Singh (Retd.)",
			Role:         "Chief Information Security Officer",
			Company:      "SecureNet Solutions",
			Industry:     "Technology",
			Experience:   "15+ years",
			Background:   "Former naval officer specialized in cybersecurity. Helps veterans transition into information security and technology roles.",
			Skills:       []string{"Cybersecurity", "Information Security", "Risk Management", "IT Strategy", "Technology Transition"},
			Availability: domain.AvailabilityMonthly,
			Rating:       4.7,
			ReviewCount:  29,
			ImageURL:     "https://images.pexels.com/photos/2379005/pexels-photo-2379005.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			IsVeteran:    true,
		},
		{
			ID:           "4",
			Name:         "Dr. Priya Sharma",
			Role:         "Hospital Administrator",
			Company:      "Lifeline Medical Center",
			Industry:     "Healthcare",
			Experience:   "10+ years",
			Background:   "Specializes in helping veterans transition into healthcare administration roles. Expert in healthcare operations and management.",
			Skills:       []string{"Healthcare Administration", "Medical Operations", "Staff Management", "Healthcare Compliance", "Patient Care"},
			Availability: domain.AvailabilityWeekly,
			Rating:       4.6,
			ReviewCount:  23,
			ImageURL:     "https://images.pexels.com/photos/1181686/pexels-photo-1181686.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			IsVeteran:    false,
		},
		{
			ID:           "5",
			Name:         "Maj. Arjun Reddy (Retd.)",
			Role:         "Project Manager",
			Company:      "BuildRight Construction",
			Industry:     "Construction",
			Experience:   "10+ years",
			Background:   "Former army engineer who transitioned to construction project management. Specializes in helping veterans leverage their organizational skills in civilian projects.",
			Skills:       []string{"Project Management", "Construction Planning", "Team Leadership", "Risk Assessment", "Budget Management"},
			Availability: domain.AvailabilityBiWeekly,
			Rating:       4.8,
			ReviewCount:  31,
			ImageURL:     "https://images.pexels.com/photos/1516680/pexels-photo-1516680.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			IsVeteran:    true,
		},
		{
			ID:           "6",
			Name:         "Samir Kapoor",
			Role:         "Finance Director",
			Company:      "Global Investments",
			Industry:     "Finance",
			Experience:   "15+ years",
			Background:   "Helps veterans translate their skills into finance and business roles. Specializes in career transitions to corporate finance and investment banking.",
			Skills:       []string{"Financial Planning", "Investment Strategies", "Corporate Finance", "Career Transition", "Networking"},
			Availability: domain.AvailabilityMonthly,
			Rating:       4.9,
			ReviewCount:  27,
			ImageURL:     "https://images.pexels.com/photos/2182970/pexels-photo-2182970.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			IsVeteran:    false,
		},
		{
			ID:           "7",
			Name:         "Capt. Neha Verma (Retd.)",
			Role:         "Supply Chain Director",
			Company:      "LogiTech Solutions",
			Industry:     "Logistics",
			Experience:   "10+ years",
			Background:   "Former army logistics officer who transitioned to corporate supply chain management. Helps veterans navigate careers in logistics and operations.",
			Skills:       []string{"Supply Chain Management", "Logistics Operations", "Inventory Control", "Process Optimization", "Team Leadership"},
			Availability: domain.AvailabilityWeekly,
			Rating:       4.7,
			ReviewCount:  19,
			ImageURL:     "https://images.pexels.com/photos/1181690/pexels-photo-1181690.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			IsVeteran:    true,
		},
		{
			ID:           "8",
			Name:         "Rahul Gupta",
			Role:         "Senior Software Engineer",
			Company:      "TechStar Innovations",
			Industry:     "Technology",
			Experience:   "10+ years",
			Background:   "Specializes in helping veterans transition into tech careers. Expert in software development and technical skill acquisition.",
			Skills:       []string{"Software Development", "Technical Training", "Career Transition", "Tech Industry Navigation", "Skill Development"},
			Availability: domain.AvailabilityBiWeekly,
			Rating:       4.8,
			ReviewCount:  22,
			ImageURL:     "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			IsVeteran:    false,
		},
		{
			ID:           "9",
			Name:         "Lt. Col. Sanjay Patel (Retd.)",
			Role:         "Government Relations Director",
			Company:      "PolicyMakers Inc.",
			Industry:     "Government",
			Experience:   "20+ years",
			Background:   "Former military officer with extensive experience in government relations. Helps veterans transition into public service and government affairs roles.",
			Skills:       []string{"Government Relations", "Public Policy", "Stakeholder Management", "Strategic Communication", "Leadership"},
			Availability: domain.AvailabilityMonthly,
			Rating:       4.9,
			ReviewCount:  35,
			ImageURL:     "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			IsVeteran:    true,
		},
	}
}
