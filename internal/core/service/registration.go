package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/platformkit/auth-service/internal/core/domain"
	"github.com/platformkit/auth-service/internal/core/ports"
)

// StampCache abstracts the security-stamp cache (Redis).
type StampCache interface {
	Remember(ctx context.Context, userID, stamp string) error
}

type registrationService struct {
	users  ports.UserStore
	roles  ports.RoleRegistry
	stamps StampCache
	log    zerolog.Logger
}

// NewRegistrationService returns a RegistrationService implementation.
func NewRegistrationService(
	users ports.UserStore,
	roles ports.RoleRegistry,
	stamps StampCache,
	log zerolog.Logger,
) ports.RegistrationService {
	return &registrationService{
		users:  users,
		roles:  roles,
		stamps: stamps,
		log:    log,
	}
}

// Register creates a new account with the default USER role. The account is
// not rolled back if role assignment fails; uniqueness constraints in the
// store make a retry safe.
func (s *registrationService) Register(ctx context.Context, username, email, password string) error {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("register lookup: %w", err)
	}

	user := &domain.User{
		ID:            uuid.NewString(),
		Username:      username,
		Email:         email,
		SecurityStamp: uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user, password); err != nil {
		return err
	}

	if err := s.stamps.Remember(ctx, user.ID, user.SecurityStamp); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("stamp cache write failed, continuing")
	}

	return s.roles.AssignRole(ctx, user, domain.RoleUser)
}
