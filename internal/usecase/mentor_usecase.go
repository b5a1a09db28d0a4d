package usecase

import (
	"context"
	"strings"

	"vetcareer-backend/internal/domain"
	"vetcareer-backend/pkg/apperror"
)

type mentorUsecase struct {
	mentorRepo domain.MentorRepository
}

func NewMentorUsecase(mentorRepo domain.MentorRepository) domain.MentorUsecase {
	return &mentorUsecase{mentorRepo: mentorRepo}
}

// ListMentors filters like the job board, except free text also searches
// each mentor's skills.
func (u *mentorUsecase) ListMentors(ctx context.Context, filter domain.MentorFilter) ([]domain.MentorProfile, error) {
	mentors, err := u.mentorRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if filter.IsZero() {
		return mentors, nil
	}

	filtered := make([]domain.MentorProfile, 0, len(mentors))
	for _, mentor := range mentors {
		if matchesMentorFilter(mentor, filter) {
			filtered = append(filtered, mentor)
		}
	}
	return filtered, nil
}

func (u *mentorUsecase) GetMentorDetails(ctx context.Context, id string) (*domain.MentorProfile, error) {
	mentor, err := u.mentorRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Mentor not found")
		}
		return nil, apperror.Internal(err)
	}
	return mentor, nil
}

func matchesMentorFilter(mentor domain.MentorProfile, f domain.MentorFilter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		hit := strings.Contains(strings.ToLower(mentor.Name), needle) ||
			strings.Contains(strings.ToLower(mentor.Role), needle) ||
			strings.Contains(strings.ToLower(mentor.Company), needle)
		if !hit {
			for _, skill := range mentor.Skills {
				if strings.Contains(strings.ToLower(skill), needle) {
					hit = true
					break
				}
			}
		}
		if !hit {
			return false
		}
	}
	if f.Industry != "" && mentor.Industry != f.Industry {
		return false
	}
	if f.Experience != "" && mentor.Experience != f.Experience {
		return false
	}
	if f.Availability != "" && mentor.Availability != f.Availability {
		return false
	}
	return true
}
