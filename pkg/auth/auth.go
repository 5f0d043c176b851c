// Package auth defines the authentication contract for MongoGate.
//
// The gateway consumes identity through this package only: an Authenticator
// turns a caller-presented credential into Claims, and the claims are
// injected into the request context for downstream layers. Business code
// never parses tokens itself.
package auth

import (
	"context"
	"time"
)

// Claims represents the verified identity attached to a request.
type Claims struct {
	// Subject is the stable user identifier.
	Subject string `json:"sub"`

	// Issuer identifies the token issuer.
	Issuer string `json:"iss,omitempty"`

	// ExpiresAt is the expiration time (Unix seconds).
	ExpiresAt int64 `json:"exp,omitempty"`

	// IssuedAt is the issue time (Unix seconds).
	IssuedAt int64 `json:"iat,omitempty"`

	// NotBefore is the not-before time (Unix seconds).
	NotBefore int64 `json:"nbf,omitempty"`

	// ID is the unique token identifier.
	ID string `json:"jti,omitempty"`

	// Extra carries custom claims (username, email).
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// ExtraString returns a string-valued custom claim, or "" when absent.
func (c *Claims) ExtraString(key string) string {
	if c == nil || c.Extra == nil {
		return ""
	}
	if s, ok := c.Extra[key].(string); ok {
		return s
	}
	return ""
}

// Token is an issued credential.
type Token interface {
	GetAccessToken() string
	GetTokenType() string
	GetExpiresAt() int64
}

// BaseToken is the default Token implementation.
type BaseToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
	ExpiresIn   int64  `json:"expires_in"`
}

// GetAccessToken returns the raw token string.
func (t *BaseToken) GetAccessToken() string { return t.AccessToken }

// GetTokenType returns the token type ("Bearer").
func (t *BaseToken) GetTokenType() string { return t.TokenType }

// GetExpiresAt returns the expiration time (Unix seconds).
func (t *BaseToken) GetExpiresAt() int64 { return t.ExpiresAt }

// SignOptions carries per-token signing overrides.
type SignOptions struct {
	ExpiresAt *time.Time
	TokenID   string
	Extra     map[string]interface{}
}

// SignOption is a functional option for Sign.
type SignOption func(*SignOptions)

// WithExtra attaches custom claims to the token.
func WithExtra(extra map[string]interface{}) SignOption {
	return func(o *SignOptions) {
		o.Extra = extra
	}
}

// WithExpiresAt overrides the token expiration.
func WithExpiresAt(t time.Time) SignOption {
	return func(o *SignOptions) {
		o.ExpiresAt = &t
	}
}

// Authenticator issues and verifies credentials.
type Authenticator interface {
	// Sign creates a new token for the given subject.
	Sign(ctx context.Context, subject string, opts ...SignOption) (Token, error)

	// Verify validates the token and returns the claims.
	Verify(ctx context.Context, token string) (*Claims, error)

	// Revoke invalidates a token before its natural expiration.
	Revoke(ctx context.Context, token string) error
}
