package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/platformkit/auth-service/internal/core/domain"
	"github.com/platformkit/auth-service/internal/core/ports"
)

type authService struct {
	users ports.UserStore
	roles ports.RoleRegistry
}

// NewAuthService returns an AuthService implementation.
func NewAuthService(users ports.UserStore, roles ports.RoleRegistry) ports.AuthService {
	return &authService{users: users, roles: roles}
}

// Login verifies the supplied credentials and assembles the claim set for
// one token: name, subject id, a fresh jti, then one role claim per assigned
// role in registry order.
func (s *authService) Login(ctx context.Context, usernameOrEmail, password string) (domain.ClaimSet, error) {
	user, err := s.users.FindByUsername(ctx, usernameOrEmail)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.users.FindByEmail(ctx, usernameOrEmail)
	}
	if err != nil {
		return nil, err
	}

	if !s.users.VerifyPassword(ctx, user, password) {
		return nil, domain.ErrInvalidCredentials
	}

	roles, err := s.roles.RolesFor(ctx, user)
	if err != nil {
		return nil, err
	}

	claims := domain.ClaimSet{
		{Key: domain.ClaimName, Value: user.Username},
		{Key: domain.ClaimNameIdentifier, Value: user.ID},
		{Key: domain.ClaimTokenID, Value: uuid.NewString()},
	}
	for _, role := range roles {
		claims = append(claims, domain.Claim{Key: domain.ClaimRole, Value: role})
	}

	return claims, nil
}
