// Package auth covers the two credentials the API accepts: Google ID tokens
// verified against the configured OAuth client IDs, and session JWTs issued
// to phone-login clients.
package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

// Identity is what a verified ID token resolves to.
type Identity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}

// Verifier validates a bearer ID token issued by an external identity
// provider. Tests inject a fake.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// GoogleVerifier validates Google ID tokens, accepting any of the configured
// client IDs as audience. Token cryptography is delegated entirely to the
// idtoken package.
type GoogleVerifier struct {
	audiences []string
}

func NewGoogleVerifier(clientIDs []string) *GoogleVerifier {
	return &GoogleVerifier{audiences: clientIDs}
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if len(v.audiences) == 0 {
		return nil, errors.New("no Google client IDs configured")
	}

	var lastErr error
	for _, aud := range v.audiences {
		payload, err := idtoken.Validate(ctx, token, aud)
		if err != nil {
			lastErr = err
			continue
		}
		return identityFromClaims(payload.Subject, payload.Claims), nil
	}
	return nil, fmt.Errorf("google id token rejected for all audiences: %w", lastErr)
}

func identityFromClaims(subject string, claims map[string]interface{}) *Identity {
	id := &Identity{Subject: subject}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if verified, ok := claims["email_verified"].(bool); ok {
		id.EmailVerified = verified
	}
	if name, ok := claims["name"].(string); ok {
		id.Name = name
	}
	return id
}
