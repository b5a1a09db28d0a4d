package domain

import "context"

// Resource type values.
const (
	ResourceTypeArticle  = "article"
	ResourceTypeGuide    = "guide"
	ResourceTypeVideo    = "video"
	ResourceTypeTemplate = "template"
)

// Resource is a static career-transition resource record (guide, video,
// template or article).
type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Featured    bool   `json:"featured"`
	Popular     bool   `json:"popular"`
}

// ResourceCategory describes one browsable resource category.
type ResourceCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ResourceFilter holds the resource library criteria. Category "all" (or
// empty) matches every category.
type ResourceFilter struct {
	Search   string `json:"search"`
	Category string `json:"category"`
}

type ResourceRepository interface {
	Fetch(ctx context.Context) ([]Resource, error)
	Categories(ctx context.Context) ([]ResourceCategory, error)
}

type ResourceUsecase interface {
	ListResources(ctx context.Context, filter ResourceFilter) ([]Resource, error)
	FeaturedResources(ctx context.Context) ([]Resource, error)
	PopularResources(ctx context.Context) ([]Resource, error)
	ListCategories(ctx context.Context) ([]ResourceCategory, error)
}
