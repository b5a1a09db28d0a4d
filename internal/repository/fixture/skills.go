package fixture

import (
	"context"
	"sort"
	"strings"

	"vetcareer-backend/internal/domain"
)

// defaultRoleSalary is the annual INR estimate used for roles absent from
// the salary table.
const defaultRoleSalary = 500000

type skillRepository struct {
	rolesBySkill map[string][]string
	salaryByRole map[string]int
}

// NewSkillRepository builds the static skill-to-role and role-to-salary
// lookup tables.
func NewSkillRepository() domain.SkillRepository {
	return &skillRepository{
		rolesBySkill: map[string][]string{
			"leadership": {"Operations Manager", "Project Coordinator", "Team Lead"},
			"logistics":  {"Supply Chain Manager", "Warehouse Supervisor", "Procurement Analyst"},
			"technical":  {"Maintenance Engineer", "Field Service Technician", "Quality Control Officer"},
			"strategy":   {"Business Analyst", "Strategic Planner", "Policy Advisor"},
		},
		salaryByRole: map[string]int{
			"Operations Manager":       900000,
			"Project Coordinator":      750000,
			"Team Lead":                800000,
			"Supply Chain Manager":     850000,
			"Warehouse Supervisor":     600000,
			"Procurement Analyst":      700000,
			"Maintenance Engineer":     720000,
			"Field Service Technician": 650000,
			"Quality Control Officer":  700000,
			"Business Analyst":         850000,
			"Strategic Planner":        900000,
			"Policy Advisor":           870000,
		},
	}
}

// RolesForSkill matches case-insensitively and returns an empty slice for
// an unknown skill.
func (r *skillRepository) RolesForSkill(ctx context.Context, skill string) ([]string, error) {
	roles, ok := r.rolesBySkill[strings.ToLower(strings.TrimSpace(skill))]
	if !ok {
		return []string{}, nil
	}
	out := make([]string, len(roles))
	copy(out, roles)
	return out, nil
}

func (r *skillRepository) SalaryForRole(ctx context.Context, role string) (int, error) {
	salary, ok := r.salaryByRole[role]
	if !ok {
		return defaultRoleSalary, nil
	}
	return salary, nil
}

func (r *skillRepository) KnownSkills() []string {
	skills := make([]string, 0, len(r.rolesBySkill))
	for skill := range r.rolesBySkill {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}
