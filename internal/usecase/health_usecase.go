package usecase

import (
	"context"

	"vetcareer-backend/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct{}

func NewHealthUsecase() HealthUsecase {
	return &healthUsecase{}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":  "ok",
		"session": "memory",
	}
	if redis.HealthCheck(ctx) == nil {
		status["session"] = "redis"
	}
	return status
}
