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

func TestTranslateSkill(t *testing.T) {
	uc := usecase.NewSkillUsecase(fixture.NewSkillRepository(), 0, 0)
	ctx := context.Background()

	t.Run("known skill returns roles with salaries in table order", func(t *testing.T) {
		result, err := uc.Translate(ctx, "leadership")
		require.NoError(t, err)
		assert.Equal(t, "leadership", result.Skill)
		require.Len(t, result.Roles, 3)
		assert.Equal(t, domain.RoleSalary{Role: "Operations Manager", Salary: 900000}, result.Roles[0])
		assert.Equal(t, domain.RoleSalary{Role: "Project Coordinator", Salary: 750000}, result.Roles[1])
		assert.Equal(t, domain.RoleSalary{Role: "Team Lead", Salary: 800000}, result.Roles[2])
	})

	t.Run("lookup ignores case and surrounding whitespace", func(t *testing.T) {
		result, err := uc.Translate(ctx, "  Strategy ")
		require.NoError(t, err)
		require.Len(t, result.Roles, 3)
		assert.Equal(t, "Business Analyst", result.Roles[0].Role)
	})

	t.Run("unknown skill names the known ones", func(t *testing.T) {
		_, err := uc.Translate(ctx, "piloting")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "piloting")
		assert.Contains(t, err.Error(), "leadership, logistics, strategy, technical")
	})

	t.Run("blank skill is rejected", func(t *testing.T) {
		_, err := uc.Translate(ctx, "   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Skill is required")
	})
}
