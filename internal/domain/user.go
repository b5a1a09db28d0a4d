package domain

import "context"

// Identity roles.
const (
	RoleVeteran  = "veteran"
	RoleEmployer = "employer"
	RoleMentor   = "mentor"
	RoleAdmin    = "admin"
)

// Identity is the record representing the logged-in user. At most one
// Identity is resident at a time; it is owned by the session store and
// persisted as a single serialized record.
//
// Identifier is the service ID for veterans and the email address for
// employers and mentors.
type Identity struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Identifier       string `json:"identifier"`
	Role             string `json:"role"`
	ProfileCompleted bool   `json:"profile_completed"`
}

// SessionRepository persists the single resident Identity under a fixed
// key. Load returns (nil, nil) when no identity is resident; a malformed
// persisted record is logged and treated as absent, never surfaced as an
// error.
type SessionRepository interface {
	Save(ctx context.Context, identity *Identity) error
	Load(ctx context.Context) (*Identity, error)
	Clear(ctx context.Context) error
}

// AuthUsecase is the mock login/register/logout flow. Login and Register
// simulate network latency and are mutually exclusive: while one call is
// in flight, further calls fail with a conflict error.
type AuthUsecase interface {
	Login(ctx context.Context, identifier, password string) (*Identity, error)
	Register(ctx context.Context, name, identifier, password, role string) (*Identity, error)
	Logout(ctx context.Context) error
	// RestoreSession rehydrates the persisted Identity, if any. Invoked
	// once at startup and by the session endpoint.
	RestoreSession(ctx context.Context) (*Identity, error)
	// LoginInFlight reports whether a login or registration is currently
	// being processed.
	LoginInFlight() bool
}
