package model

import (
	"github.com/kart-io/mongogate/pkg/auth"
)

// Identity is the verified caller attached to each request.
// UserID is the opaque owner key every registry operation is scoped by.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// IdentityFromClaims builds an Identity from verified token claims.
// Returns nil when the claims carry no subject, so callers fail fast
// instead of propagating an empty owner key into storage queries.
func IdentityFromClaims(claims *auth.Claims) *Identity {
	if claims == nil || claims.Subject == "" {
		return nil
	}
	return &Identity{
		UserID:   claims.Subject,
		Username: claims.ExtraString("username"),
		Email:    claims.ExtraString("email"),
	}
}
