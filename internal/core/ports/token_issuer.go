package ports

import "github.com/platformkit/auth-service/internal/core/domain"

// TokenIssuer signs a claim set into a compact, time-bounded token.
type TokenIssuer interface {
	Issue(claims domain.ClaimSet) (string, error)
}

// TokenVerifier is the symmetric counterpart of TokenIssuer. Any failure
// (expired, malformed, bad signature, issuer/audience mismatch) is reported
// as domain.ErrTokenInvalid.
type TokenVerifier interface {
	Verify(token string) (domain.ClaimSet, error)
}
