package usecase

import (
	"context"
	"strings"

	"vetcareer-backend/internal/domain"
	"vetcareer-backend/pkg/apperror"
)

type resourceUsecase struct {
	resourceRepo domain.ResourceRepository
}

func NewResourceUsecase(resourceRepo domain.ResourceRepository) domain.ResourceUsecase {
	return &resourceUsecase{resourceRepo: resourceRepo}
}

// ListResources searches title and description case-insensitively; a
// category of "all" or empty skips category matching.
func (u *resourceUsecase) ListResources(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error) {
	resources, err := u.resourceRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	filtered := make([]domain.Resource, 0, len(resources))
	for _, res := range resources {
		if matchesResourceFilter(res, filter) {
			filtered = append(filtered, res)
		}
	}
	return filtered, nil
}

func (u *resourceUsecase) FeaturedResources(ctx context.Context) ([]domain.Resource, error) {
	return u.selectResources(ctx, func(r domain.Resource) bool { return r.Featured })
}

func (u *resourceUsecase) PopularResources(ctx context.Context) ([]domain.Resource, error) {
	return u.selectResources(ctx, func(r domain.Resource) bool { return r.Popular })
}

func (u *resourceUsecase) ListCategories(ctx context.Context) ([]domain.ResourceCategory, error) {
	categories, err := u.resourceRepo.Categories(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return categories, nil
}

func (u *resourceUsecase) selectResources(ctx context.Context, keep func(domain.Resource) bool) ([]domain.Resource, error) {
	resources, err := u.resourceRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	out := make([]domain.Resource, 0, len(resources))
	for _, res := range resources {
		if keep(res) {
			out = append(out, res)
		}
	}
	return out, nil
}

func matchesResourceFilter(res domain.Resource, f domain.ResourceFilter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(res.Title), needle) &&
			!strings.Contains(strings.ToLower(res.Description), needle) {
			return false
		}
	}
	if f.Category != "" && f.Category != "all" && res.Category != f.Category {
		return false
	}
	return true
}
