// Package memory holds in-process repositories for records created at
// runtime.
package memory

import (
	"context"
	"sync"

	"vetcareer-backend/internal/domain"
)

type applicationRepository struct {
	mu   sync.RWMutex
	apps []domain.JobApplication
}

// NewApplicationRepository builds an empty in-memory application store.
func NewApplicationRepository() domain.ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps = append(r.apps, *app)
	return nil
}

func (r *applicationRepository) CountByIdentity(ctx context.Context, identityID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, app := range r.apps {
		if app.IdentityID == identityID {
			count++
		}
	}
	return count, nil
}

// FetchByIdentity returns the identity's applications in the order they
// were created.
func (r *applicationRepository) FetchByIdentity(ctx context.Context, identityID string) ([]domain.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.JobApplication, 0)
	for _, app := range r.apps {
		if app.IdentityID == identityID {
			out = append(out, app)
		}
	}
	return out, nil
}
