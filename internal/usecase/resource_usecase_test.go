package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetcareer-backend/internal/domain"
	"vetcareer-backend/internal/repository/fixture"
	"vetcareer-backend/internal/usecase"
)

func TestListResources(t *testing.T) {
	uc := usecase.NewResourceUsecase(fixture.NewResourceRepository())
	ctx := context.Background()

	t.Run("no criteria returns the whole library", func(t *testing.T) {
		resources, err := uc.ListResources(ctx, domain.ResourceFilter{})
		require.NoError(t, err)
		assert.Len(t, resources, 15)
	})

	t.Run("category all bypasses category matching", func(t *testing.T) {
		all, err := uc.ListResources(ctx, domain.ResourceFilter{Category: "all"})
		require.NoError(t, err)
		assert.Len(t, all, 15)
	})

	t.Run("category filters exactly", func(t *testing.T) {
		resources, err := uc.ListResources(ctx, domain.ResourceFilter{Category: "resume"})
		require.NoError(t, err)
		require.NotEmpty(t, resources)
		for _, res := range resources {
			assert.Equal(t, "resume", res.Category)
		}
	})

	t.Run("search matches title or description", func(t *testing.T) {
		resources, err := uc.ListResources(ctx, domain.ResourceFilter{Search: "gi bill"})
		require.NoError(t, err)
		require.Len(t, resources, 1)
		assert.Equal(t, "GI Bill Benefits Guide", resources[0].Title)
	})

	t.Run("search and category combine", func(t *testing.T) {
		resources, err := uc.ListResources(ctx, domain.ResourceFilter{Search: "templates", Category: "interview"})
		require.NoError(t, err)
		for _, res := range resources {
			assert.Equal(t, "interview", res.Category)
		}
	})
}

func TestFeaturedAndPopularResources(t *testing.T) {
	uc := usecase.NewResourceUsecase(fixture.NewResourceRepository())
	ctx := context.Background()

	featured, err := uc.FeaturedResources(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, featured)
	for _, res := range featured {
		assert.True(t, res.Featured)
	}

	popular, err := uc.PopularResources(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, popular)
	for _, res := range popular {
		assert.True(t, res.Popular)
	}
}

func TestListResourceCategories(t *testing.T) {
	uc := usecase.NewResourceUsecase(fixture.NewResourceRepository())

	categories, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 5)
	assert.Equal(t, "resume", categories[0].ID)
	assert.Equal(t, "Resumes & CVs", categories[0].Name)
}
