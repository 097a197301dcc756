package auth

import (
	"context"
	"log"
	"time"

	fbauth "firebase.google.com/go/v4/auth"

	"gymtrack/core/internal/domain"
)

// firebaseVerifier implements TokenVerifier against Firebase Authentication.
type firebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier wraps a Firebase auth client as a TokenVerifier.
func NewFirebaseVerifier(client *fbauth.Client) TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) Verify(ctx context.Context, token string) (domain.Identity, *domain.AccessToken, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return domain.Identity{}, nil, ErrInvalidToken
	}

	identity := domain.Identity{UserID: decoded.UID}
	if name, ok := decoded.Claims["name"].(string); ok {
		identity.Name = name
	}

	// Admin status lives in a custom claim on the user record, not in the
	// ID token itself.
	record, err := v.client.GetUser(ctx, decoded.UID)
	if err != nil {
		log.Printf("ERROR: Failed to load user record for %s: %v", decoded.UID, err)
		return domain.Identity{}, nil, ErrInvalidToken
	}
	if admin, ok := record.CustomClaims["admin"].(bool); ok {
		identity.Admin = admin
	}

	access := &domain.AccessToken{
		Token:     token,
		IssuedAt:  time.Unix(decoded.IssuedAt, 0),
		ExpiresAt: time.Unix(decoded.Expires, 0),
	}
	return identity, access, nil
}
