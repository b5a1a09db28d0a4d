package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetcareer-backend/internal/domain"
	"vetcareer-backend/internal/repository/session"
	"vetcareer-backend/internal/usecase"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("documented veteran credentials sign in and persist", func(t *testing.T) {
		store := session.NewStore(time.Hour)
		uc := usecase.NewAuthUsecase(store, 0)

		identity, err := uc.Login(ctx, "veteran@example.com", "password")
		require.NoError(t, err)
		assert.Equal(t, "1", identity.ID)
		assert.Equal(t, "John Veteran", identity.Name)
		assert.Equal(t, domain.RoleVeteran, identity.Role)
		assert.False(t, identity.ProfileCompleted)

		restored, err := uc.RestoreSession(ctx)
		require.NoError(t, err)
		require.NotNil(t, restored)
		assert.Equal(t, identity.ID, restored.ID)
	})

	t.Run("identifier lookup is case-insensitive", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(session.NewStore(time.Hour), 0)

		identity, err := uc.Login(ctx, " Veteran@Example.com ", "password")
		require.NoError(t, err)
		assert.Equal(t, "1", identity.ID)
	})

	t.Run("wrong password and unknown identifier fail identically", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(session.NewStore(time.Hour), 0)

		_, errWrong := uc.Login(ctx, "veteran@example.com", "hunter2")
		require.Error(t, errWrong)
		_, errUnknown := uc.Login(ctx, "nobody@example.com", "password")
		require.Error(t, errUnknown)
		assert.Equal(t, errWrong.Error(), errUnknown.Error())
		assert.Contains(t, errWrong.Error(), "Invalid credentials")
	})

	t.Run("employer and mentor accounts exist", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(session.NewStore(time.Hour), 0)

		employer, err := uc.Login(ctx, "employer@example.com", "employer123")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleEmployer, employer.Role)

		mentor, err := uc.Login(ctx, "mentor@example.com", "mentor123")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleMentor, mentor.Role)
	})

	t.Run("second sign-in while one is in flight is rejected", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(session.NewStore(time.Hour), 200*time.Millisecond)

		started := make(chan struct{})
		done := make(chan error, 1)
		go func() {
			close(started)
			_, err := uc.Login(ctx, "veteran@example.com", "password")
			done <- err
		}()

		<-started
		// Wait for the first call to take the slot.
		require.Eventually(t, uc.LoginInFlight, time.Second, 5*time.Millisecond)

		_, err := uc.Login(ctx, "veteran@example.com", "password")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already being processed")

		require.NoError(t, <-done)
		assert.False(t, uc.LoginInFlight())
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("registration always succeeds and persists", func(t *testing.T) {
		store := session.NewStore(time.Hour)
		uc := usecase.NewAuthUsecase(store, 0)

		identity, err := uc.Register(ctx, "Maria Lopez", "maria@example.com", "s3cret", domain.RoleVeteran)
		require.NoError(t, err)
		assert.NotEmpty(t, identity.ID)
		assert.Equal(t, "Maria Lopez", identity.Name)
		assert.Equal(t, "maria@example.com", identity.Identifier)
		assert.False(t, identity.ProfileCompleted)

		restored, err := uc.RestoreSession(ctx)
		require.NoError(t, err)
		require.NotNil(t, restored)
		assert.Equal(t, identity.ID, restored.ID)
	})

	t.Run("admin role cannot be self-assigned", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(session.NewStore(time.Hour), 0)

		_, err := uc.Register(ctx, "Eve", "eve@example.com", "pw", domain.RoleAdmin)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Role must be")
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(time.Hour)
	uc := usecase.NewAuthUsecase(store, 0)

	_, err := uc.Login(ctx, "veteran@example.com", "password")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx))

	restored, err := uc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)

	// Logging out again is a no-op.
	require.NoError(t, uc.Logout(ctx))
}
