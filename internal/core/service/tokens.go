package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/platformkit/auth-service/internal/core/domain"
)

// tokenClaims is the JWT payload shape. Roles serialize as an ordered array
// under a single "role" key, preserving registry order.
type tokenClaims struct {
	Name           string   `json:"name,omitempty"`
	NameIdentifier string   `json:"nameidentifier,omitempty"`
	Roles          []string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 tokens with a shared secret. Both
// operations are stateless, single-shot transformations.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewTokenIssuer creates a TokenIssuer. If ttl <= 0, one hour is used.
func NewTokenIssuer(secret, issuer, audience string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue signs the claim set into a compact token expiring ttl from now.
func (t *TokenIssuer) Issue(claims domain.ClaimSet) (string, error) {
	now := t.now()

	name, _ := claims.Get(domain.ClaimName)
	subject, _ := claims.Get(domain.ClaimNameIdentifier)
	tokenID, _ := claims.Get(domain.ClaimTokenID)
	if tokenID == "" {
		tokenID = uuid.NewString()
	}

	tc := &tokenClaims{
		Name:           name,
		NameIdentifier: subject,
		Roles:          claims.Values(domain.ClaimRole),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tc)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry, issuer and audience, and rebuilds the
// claim set in issuance order. Every failure mode collapses into
// domain.ErrTokenInvalid.
func (t *TokenIssuer) Verify(raw string) (domain.ClaimSet, error) {
	opts := []jwt.ParserOption{jwt.WithTimeFunc(t.now)}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}
	if t.audience != "" {
		opts = append(opts, jwt.WithAudience(t.audience))
	}

	token, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	tc, ok := token.Claims.(*tokenClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	claims := domain.ClaimSet{
		{Key: domain.ClaimName, Value: tc.Name},
		{Key: domain.ClaimNameIdentifier, Value: tc.NameIdentifier},
		{Key: domain.ClaimTokenID, Value: tc.ID},
	}
	for _, role := range tc.Roles {
		claims = append(claims, domain.Claim{Key: domain.ClaimRole, Value: role})
	}

	return claims, nil
}
