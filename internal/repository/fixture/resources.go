package fixture

import (
	"context"

	"vetcareer-backend/internal/domain"
)

type resourceRepository struct {
	resources  []domain.Resource
	categories []domain.ResourceCategory
}

// NewResourceRepository builds the resource library fixture set.
func NewResourceRepository() domain.ResourceRepository {
	return &resourceRepository{
		resources:  buildResources(),
		categories: buildResourceCategories(),
	}
}

func (r *resourceRepository) Fetch(ctx context.Context) ([]domain.Resource, error) {
	out := make([]domain.Resource, len(r.resources))
	copy(out, r.resources)
	return out, nil
}

func (r *resourceRepository) Categories(ctx context.Context) ([]domain.ResourceCategory, error) {
	out := make([]domain.ResourceCategory, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func buildResourceCategories() []domain.ResourceCategory {
	return []domain.ResourceCategory{
		{ID: "resume", Name: "Resumes & CVs"},
		{ID: "interview", Name: "Interviews"},
		{ID: "skill-translation", Name: "Skill Translation"},
		{ID: "education", Name: "Education"},
		{ID: "networking", Name: "Networking"},
	}
}

func buildResources() []domain.Resource {
	return []domain.Resource{
		{
			ID:          "1",
			Title:       "Military to Civilian Resume Guide",
			Description: "Learn how to translate your military experience into a compelling civilian resume.",
			Category:    "resume",
			Type:        domain.ResourceTypeGuide,
			URL:         "/resources/guides/military-to-civilian-resume",
			Featured:    true,
		},
		{
			ID:          "2",
			Title:       "Mastering Behavioral Interviews",
			Description: "Prepare for common interview questions and learn how to effectively communicate your military experience.",
			Category:    "interview",
			Type:        domain.ResourceTypeVideo,
			URL:         "/resources/videos/behavioral-interviews",
			Popular:     true,
		},
		{
			ID:          "3",
			Title:       "Military Skills Translator",
			Description: "Interactive tool to help you translate your military skills and experience into civilian terms.",
			Category:    "skill-translation",
			Type:        domain.ResourceTypeArticle,
			URL:         "/resources/tools/skills-translator",
			Featured:    true,
			Popular:     true,
		},
		{
			ID:          "4",
			Title:       "Resume Templates for Veterans",
			Description: "Download professionally designed resume templates specifically for military veterans.",
			Category:    "resume",
			Type:        domain.ResourceTypeTemplate,
			URL:         "/resources/templates/veteran-resumes",
			Popular:     true,
		},
		{
			ID:          "5",
			Title:       "GI Bill Benefits Guide",
			Description: "Comprehensive guide to understanding and maximizing your GI Bill education benefits.",
			Category:    "education",
			Type:        domain.ResourceTypeGuide,
			URL:         "/resources/guides/gi-bill-benefits",
			Featured:    true,
		},
		{
			ID:          "6",
			Title:       "Networking Strategies for Veterans",
			Description: "Learn how to build a professional network and leverage it for job opportunities.",
			Category:    "networking",
			Type:        domain.ResourceTypeArticle,
			URL:         "/resources/articles/networking-strategies",
			Popular:     true,
		},
		{
			ID:          "7",
			Title:       "Interview Preparation Worksheet",
			Description: "Downloadable worksheet to help you prepare for job interviews with practice questions and answer frameworks.",
			Category:    "interview",
			Type:        domain.ResourceTypeTemplate,
			URL:         "/resources/templates/interview-prep",
		},
		{
			ID:          "8",
			Title:       "LinkedIn Profile Optimization for Veterans",
			Description: "Learn how to create a standout LinkedIn profile that highlights your military experience.",
			Category:    "networking",
			Type:        domain.ResourceTypeVideo,
			URL:         "/resources/videos/linkedin-for-veterans",
		},
		{
			ID:          "9",
			Title:       "Transition Assistance Program Overview",
			Description: "Guide to understanding and utilizing the government's Transition Assistance Program (TAP).",
			Category:    "skill-translation",
			Type:        domain.ResourceTypeArticle,
			URL:         "/resources/articles/tap-overview",
		},
		{
			ID:          "10",
			Title:       "Cover Letter Templates for Veterans",
			Description: "Downloadable cover letter templates designed specifically for military veterans.",
			Category:    "resume",
			Type:        domain.ResourceTypeTemplate,
			URL:         "/resources/templates/veteran-cover-letters",
		},
		{
			ID:          "11",
			Title:       "Salary Negotiation Strategies",
			Description: "Learn how to effectively negotiate your salary and benefits in civilian roles.",
			Category:    "interview",
			Type:        domain.ResourceTypeVideo,
			URL:         "/resources/videos/salary-negotiation",
		},
		{
			ID:          "12",
			Title:       "Educational Pathways for Veterans",
			Description: "Explore different education and training options available to veterans.",
			Category:    "education",
			Type:        domain.ResourceTypeGuide,
			URL:         "/resources/guides/educational-pathways",
		},
		{
			ID:          "13",
			Title:       "Industry-Specific Skill Translation Guides",
			Description: "Detailed guides for translating military skills to specific industries like technology, healthcare, and finance.",
			Category:    "skill-translation",
			Type:        domain.ResourceTypeGuide,
			URL:         "/resources/guides/industry-skill-translation",
		},
		{
			ID:          "14",
			Title:       "Veteran Entrepreneurs: Starting Your Business",
			Description: "Resources and guidance for veterans interested in entrepreneurship and starting their own business.",
			Category:    "education",
			Type:        domain.ResourceTypeArticle,
			URL:         "/resources/articles/veteran-entrepreneurs",
		},
		{
			ID:          "15",
			Title:       "Job Search Strategy Worksheet",
			Description: "Downloadable worksheet to help you plan and organize your civilian job search.",
			Category:    "networking",
			Type:        domain.ResourceTypeTemplate,
			URL:         "/resources/templates/job-search-strategy",
		},
	}
}
