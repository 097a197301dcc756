package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"gymtrack/core/internal/domain"
)

// jwtClaims defines the token payload the dev verifier accepts and issues.
type jwtClaims struct {
	UserID string `json:"uid"`
	Name   string `json:"name"`
	Admin  bool   `json:"admin"`
	jwt.RegisteredClaims
}

// JWTVerifier is a TokenVerifier for local development and tests: it accepts
// HMAC-signed tokens carrying uid/name/admin claims, so the service can run
// without Firebase credentials.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for HS256 tokens signed with secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (domain.Identity, *domain.AccessToken, error) {
	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid || claims.UserID == "" {
		return domain.Identity{}, nil, ErrInvalidToken
	}

	identity := domain.Identity{
		UserID: claims.UserID,
		Name:   claims.Name,
		Admin:  claims.Admin,
	}
	access := &domain.AccessToken{Token: token}
	if claims.IssuedAt != nil {
		access.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		access.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, access, nil
}

// IssueToken mints a token the verifier will accept. Used by local tooling
// and tests.
func (v *JWTVerifier) IssueToken(identity domain.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		UserID: identity.UserID,
		Name:   identity.Name,
		Admin:  identity.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
