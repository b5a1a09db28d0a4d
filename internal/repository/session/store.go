// Package session persists the resident identity under a single fixed key.
// Redis is the primary backend; when Redis is unavailable the store falls
// back to an in-process copy so local development works without it.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"vetcareer-backend/internal/domain"
	"vetcareer-backend/pkg/redis"
)

const sessionKey = "session:identity"

type store struct {
	ttl time.Duration

	mu     sync.RWMutex
	cached []byte
}

// NewStore builds a SessionRepository. The persisted record expires after
// ttl; a ttl of zero persists without expiry.
func NewStore(ttl time.Duration) domain.SessionRepository {
	return &store{ttl: ttl}
}

func (s *store) Save(ctx context.Context, identity *domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cached = raw
	s.mu.Unlock()

	if client := redis.Client(); client != nil {
		if err := client.Set(ctx, sessionKey, raw, s.ttl).Err(); err != nil {
			slog.Warn("session: redis save failed, keeping in-memory copy", "error", err)
		}
	}
	return nil
}

func (s *store) Load(ctx context.Context) (*domain.Identity, error) {
	raw := s.loadRaw(ctx)
	if raw == nil {
		return nil, nil
	}

	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		// Treat a corrupted record as no session rather than locking the
		// user out of login.
		slog.Warn("session: malformed persisted identity, discarding", "error", err)
		s.discard(ctx)
		return nil, nil
	}
	return &identity, nil
}

func (s *store) Clear(ctx context.Context) error {
	s.discard(ctx)
	return nil
}

func (s *store) loadRaw(ctx context.Context) []byte {
	if client := redis.Client(); client != nil {
		raw, err := client.Get(ctx, sessionKey).Bytes()
		switch {
		case err == nil:
			return raw
		case err == goredis.Nil:
			return nil
		default:
			slog.Warn("session: redis load failed, using in-memory copy", "error", err)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached
}

func (s *store) discard(ctx context.Context) {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()

	if client := redis.Client(); client != nil {
		if err := client.Del(ctx, sessionKey).Err(); err != nil {
			slog.Warn("session: redis clear failed", "error", err)
		}
	}
}
