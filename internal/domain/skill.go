package domain

import "context"

// RoleSalary pairs a civilian role with its estimated annual salary (INR).
type RoleSalary struct {
	Role   string `json:"role"`
	Salary int    `json:"salary"`
}

// SkillTranslation is the result of translating a military skill keyword
// into civilian roles with salary estimates. Roles keep the lookup table's
// order.
type SkillTranslation struct {
	Skill string       `json:"skill"`
	Roles []RoleSalary `json:"roles"`
}

// SkillRepository exposes the two static lookup tables behind skill
// translation. RolesForSkill returns an empty slice for an unknown skill;
// SalaryForRole falls back to a default estimate for an unknown role.
type SkillRepository interface {
	RolesForSkill(ctx context.Context, skill string) ([]string, error)
	SalaryForRole(ctx context.Context, role string) (int, error)
	KnownSkills() []string
}

type SkillUsecase interface {
	Translate(ctx context.Context, skill string) (*SkillTranslation, error)
}
