package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrRoleNotFound = errors.New("role not found")
var ErrTokenInvalid = errors.New("token is invalid")

// User models an account in the system. PasswordHash and SecurityStamp are
// owned by the user store; the services only ever supply the stamp value.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	SecurityStamp string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// Violation describes a single credential-policy failure reported by the store.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CredentialError is returned by the user store when a new credential fails
// the store's password policy. The violation list is surfaced to callers
// verbatim.
type CredentialError struct {
	Violations []Violation
}

func (e *CredentialError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "credential rejected: " + strings.Join(msgs, "; ")
}
