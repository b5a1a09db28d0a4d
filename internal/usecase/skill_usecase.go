package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"vetcareer-backend/internal/domain"
	"vetcareer-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo   domain.SkillRepository
	lookupDelay time.Duration
	salaryDelay time.Duration
}

// NewSkillUsecase builds the skill translation flow. The delays simulate
// the upstream lookup services; pass zero to disable them.
func NewSkillUsecase(skillRepo domain.SkillRepository, lookupDelay, salaryDelay time.Duration) domain.SkillUsecase {
	return &skillUsecase{
		skillRepo:   skillRepo,
		lookupDelay: lookupDelay,
		salaryDelay: salaryDelay,
	}
}

// Translate resolves the skill to its civilian roles, then fetches the
// salary estimate for every role in parallel. Role order in the result
// matches the lookup table.
func (u *skillUsecase) Translate(ctx context.Context, skill string) (*domain.SkillTranslation, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, apperror.BadRequest("Skill is required")
	}

	if err := sleepCtx(ctx, u.lookupDelay); err != nil {
		return nil, err
	}

	roles, err := u.skillRepo.RolesForSkill(ctx, skill)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(roles) == 0 {
		known := strings.Join(u.skillRepo.KnownSkills(), ", ")
		return nil, apperror.NotFound(fmt.Sprintf("No jobs found for skill %q. Try: %s.", skill, known))
	}

	result := &domain.SkillTranslation{
		Skill: skill,
		Roles: make([]domain.RoleSalary, len(roles)),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, role := range roles {
		g.Go(func() error {
			if err := sleepCtx(gctx, u.salaryDelay); err != nil {
				return err
			}
			salary, err := u.skillRepo.SalaryForRole(gctx, role)
			if err != nil {
				return err
			}
			result.Roles[i] = domain.RoleSalary{Role: role, Salary: salary}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperror.Internal(err)
	}

	return result, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
