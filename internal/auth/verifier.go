package auth

import (
	"context"
	"errors"

	"gymtrack/core/internal/domain"
)

// ErrInvalidToken is returned for any token the verifier cannot accept.
// Verification failures are deliberately not distinguished further to avoid
// leaking why a token was rejected.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenVerifier resolves a bearer token into an identity. Implementations
// wrap an external identity provider; modeling this as an interface enables
// test substitution without a live provider.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, *domain.AccessToken, error)
}
