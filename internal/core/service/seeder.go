package service

import (
	"context"
	"fmt"

	"github.com/platformkit/auth-service/internal/core/domain"
	"github.com/platformkit/auth-service/internal/core/ports"
)

type roleSeeder struct {
	roles ports.RoleRegistry
}

// NewRoleSeeder returns a RoleSeeder implementation.
func NewRoleSeeder(roles ports.RoleRegistry) ports.RoleSeeder {
	return &roleSeeder{roles: roles}
}

// EnsureRoles makes sure USER, ADMIN and OWNER exist. When any one is
// missing, create calls are issued for all three; the registry treats
// create-if-exists as a no-op, so the extra calls are harmless.
func (s *roleSeeder) EnsureRoles(ctx context.Context) (domain.SeedOutcome, error) {
	allExist := true
	for _, name := range domain.KnownRoles() {
		exists, err := s.roles.RoleExists(ctx, name)
		if err != nil {
			return "", fmt.Errorf("seed check %s: %w", name, err)
		}
		if !exists {
			allExist = false
		}
	}

	if allExist {
		return domain.SeedAlreadyDone, nil
	}

	for _, name := range domain.KnownRoles() {
		if err := s.roles.CreateRole(ctx, name); err != nil {
			return "", fmt.Errorf("seed create %s: %w", name, err)
		}
	}

	return domain.SeedCompleted, nil
}
