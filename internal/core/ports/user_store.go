package ports

import (
	"context"

	"github.com/platformkit/auth-service/internal/core/domain"
)

// UserStore defines the interface for account persistence and password
// verification. Hashing is owned by the store; raw passwords never leave it.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists a new account with the given raw password. Policy
	// failures are reported as *domain.CredentialError.
	Create(ctx context.Context, user *domain.User, rawPassword string) error
	VerifyPassword(ctx context.Context, user *domain.User, rawPassword string) bool
}
