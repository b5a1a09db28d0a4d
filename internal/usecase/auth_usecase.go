package usecase

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vetcareer-backend/internal/domain"
	"vetcareer-backend/pkg/apperror"
)

// demoAccount pairs a fixed Identity with its bcrypt hash. Hashes are
// generated with scripts/genhash.go.
type demoAccount struct {
	identity     domain.Identity
	passwordHash string
}

// The credential allow-list. Plaintext demo passwords:
// veteran@example.com/password, employer@example.com/employer123,
// mentor@example.com/mentor123.
var demoAccounts = map[string]demoAccount{
	"veteran@example.com": {
		identity: domain.Identity{
			ID:         "1",
			Name:       "John Veteran",
			Identifier: "veteran@example.com",
			Role:       domain.RoleVeteran,
		},
		passwordHash: "$2b$10$AqunCujhigCRQSR/Y/zjHutjeOAyj3aQNvfAh4qQ7FcvHu08mR72y",
	},
	"employer@example.com": {
		identity: domain.Identity{
			ID:         "2",
			Name:       "Jane Employer",
			Identifier: "employer@example.com",
			Role:       domain.RoleEmployer,
		},
		passwordHash: "$2b$10$2wHpohY7yzUcHPTlq.h9Iun/oPIrYsz2lWo6icGHKFy1Lw9daMv.O",
	},
	"mentor@example.com": {
		identity: domain.Identity{
			ID:         "3",
			Name:       "Sam Mentor",
			Identifier: "mentor@example.com",
			Role:       domain.RoleMentor,
		},
		passwordHash: "$2b$10$Xnh6ic6nqbYW6tiWBlaEJeGwjU2zQH/kCmZ/BZb.0jsEA0Tc7kMmS",
	},
}

type authUsecase struct {
	sessionRepo domain.SessionRepository
	loginDelay  time.Duration
	inFlight    atomic.Bool
}

// NewAuthUsecase builds the mock credential flow. loginDelay simulates the
// upstream identity provider; pass zero to disable it.
func NewAuthUsecase(sessionRepo domain.SessionRepository, loginDelay time.Duration) domain.AuthUsecase {
	return &authUsecase{
		sessionRepo: sessionRepo,
		loginDelay:  loginDelay,
	}
}

func (u *authUsecase) Login(ctx context.Context, identifier, password string) (*domain.Identity, error) {
	release, err := u.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	if err := sleepCtx(ctx, u.loginDelay); err != nil {
		return nil, err
	}

	account, ok := demoAccounts[strings.ToLower(strings.TrimSpace(identifier))]
	if !ok {
		// Burn a compare anyway so unknown identifiers cost the same as
		// wrong passwords.
		_ = bcrypt.CompareHashAndPassword([]byte(demoAccounts["veteran@example.com"].passwordHash), []byte(password))
		return nil, apperror.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.passwordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	identity := account.identity
	if err := u.sessionRepo.Save(ctx, &identity); err != nil {
		return nil, apperror.Internal(err)
	}
	return &identity, nil
}

func (u *authUsecase) Register(ctx context.Context, name, identifier, password, role string) (*domain.Identity, error) {
	release, err := u.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	switch role {
	case domain.RoleVeteran, domain.RoleEmployer, domain.RoleMentor:
	default:
		return nil, apperror.BadRequest("Role must be veteran, employer or mentor")
	}

	if err := sleepCtx(ctx, u.loginDelay); err != nil {
		return nil, err
	}

	identity := domain.Identity{
		ID:         uuid.NewString(),
		Name:       name,
		Identifier: strings.ToLower(strings.TrimSpace(identifier)),
		Role:       role,
	}
	if err := u.sessionRepo.Save(ctx, &identity); err != nil {
		return nil, apperror.Internal(err)
	}
	return &identity, nil
}

// Logout clears the resident identity. Calling it with no session resident
// is a no-op.
func (u *authUsecase) Logout(ctx context.Context) error {
	if err := u.sessionRepo.Clear(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) RestoreSession(ctx context.Context) (*domain.Identity, error) {
	identity, err := u.sessionRepo.Load(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return identity, nil
}

func (u *authUsecase) LoginInFlight() bool {
	return u.inFlight.Load()
}

// acquire takes the single-flight slot shared by Login and Register.
func (u *authUsecase) acquire() (func(), error) {
	if !u.inFlight.CompareAndSwap(false, true) {
		return nil, apperror.Conflict("A sign-in is already being processed")
	}
	return func() { u.inFlight.Store(false) }, nil
}
