package ports

import (
	"context"

	"github.com/platformkit/auth-service/internal/core/domain"
)

// RoleRegistry defines the interface for role persistence and membership.
type RoleRegistry interface {
	RoleExists(ctx context.Context, name string) (bool, error)
	// CreateRole is duplicate-safe: creating an existing role is a no-op.
	CreateRole(ctx context.Context, name string) error
	// RolesFor returns the user's roles in assignment order.
	RolesFor(ctx context.Context, user *domain.User) ([]string, error)
	AssignRole(ctx context.Context, user *domain.User, role string) error
}
