package ports

import (
	"context"

	"github.com/platformkit/auth-service/internal/core/domain"
)

// RegistrationService creates new accounts.
type RegistrationService interface {
	Register(ctx context.Context, username, email, password string) error
}

// AuthService verifies credentials and assembles the per-login claim set.
// Token signing is the issuer's job, not the service's.
type AuthService interface {
	Login(ctx context.Context, usernameOrEmail, password string) (domain.ClaimSet, error)
}

// RoleSeeder ensures the fixed role set exists.
type RoleSeeder interface {
	EnsureRoles(ctx context.Context) (domain.SeedOutcome, error)
}
