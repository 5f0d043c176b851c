// Package jwt provides JWT-based authentication for MongoGate.
//
// It implements the auth.Authenticator interface using HMAC-signed JSON Web
// Tokens, with token revocation via a pluggable store interface.
package jwt

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"

	"github.com/kart-io/mongogate/pkg/auth"
	"github.com/kart-io/mongogate/pkg/errors"
)

// JWT implements auth.Authenticator using JSON Web Tokens.
type JWT struct {
	opts   *Options
	store  Store
	method jwtlib.SigningMethod
}

// Option is a functional option for the JWT authenticator.
type Option func(*JWT)

// WithOptions sets the JWT options.
func WithOptions(opts *Options) Option {
	return func(j *JWT) {
		if opts != nil {
			j.opts = opts
		}
	}
}

// WithKey sets the signing key.
func WithKey(key string) Option {
	return func(j *JWT) {
		j.opts.Key = key
	}
}

// WithExpired sets the token lifetime.
func WithExpired(d time.Duration) Option {
	return func(j *JWT) {
		j.opts.Expired = d
	}
}

// WithStore sets the token store for revocation support.
func WithStore(store Store) Option {
	return func(j *JWT) {
		j.store = store
	}
}

// New creates a new JWT authenticator.
func New(opts ...Option) (*JWT, error) {
	j := &JWT{
		opts: NewOptions(),
	}

	for _, opt := range opts {
		opt(j)
	}

	if err := j.opts.Complete(); err != nil {
		return nil, fmt.Errorf("complete options: %w", err)
	}
	if err := j.opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %w", err)
	}

	j.method = jwtlib.GetSigningMethod(j.opts.SigningMethod)
	if j.method == nil {
		return nil, fmt.Errorf("unsupported signing method: %s", j.opts.SigningMethod)
	}

	return j, nil
}

// customClaims extends registered claims with an extra payload.
type customClaims struct {
	jwtlib.RegisteredClaims
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// Sign creates a new token for the given subject.
func (j *JWT) Sign(ctx context.Context, subject string, opts ...auth.SignOption) (auth.Token, error) {
	signOpts := &auth.SignOptions{}
	for _, opt := range opts {
		opt(signOpts)
	}

	now := time.Now()
	expiresAt := now.Add(j.opts.Expired)
	if signOpts.ExpiresAt != nil {
		expiresAt = *signOpts.ExpiresAt
	}

	tokenID := signOpts.TokenID
	if tokenID == "" {
		var err error
		tokenID, err = generateTokenID()
		if err != nil {
			return nil, err
		}
	}

	claims := &customClaims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   subject,
			Issuer:    j.opts.Issuer,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
			NotBefore: jwtlib.NewNumericDate(now),
			ID:        tokenID,
		},
		Extra: signOpts.Extra,
	}

	token := jwtlib.NewWithClaims(j.method, claims)
	tokenString, err := token.SignedString([]byte(j.opts.Key))
	if err != nil {
		return nil, errors.ErrInternal.WithCause(err).WithMessage("failed to sign token")
	}

	return &auth.BaseToken{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.Unix(),
		ExpiresIn:   int64(expiresAt.Sub(now).Seconds()),
	}, nil
}

// Verify validates the token and returns the claims.
func (j *JWT) Verify(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if tokenString == "" {
		return nil, errors.ErrInvalidToken.WithMessage("token is empty")
	}

	token, err := jwtlib.ParseWithClaims(tokenString, &customClaims{}, func(token *jwtlib.Token) (interface{}, error) {
		if token.Method.Alg() != j.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.opts.Key), nil
	})
	if err != nil {
		return nil, errors.ErrInvalidToken.WithCause(err)
	}
	if !token.Valid {
		return nil, errors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*customClaims)
	if !ok {
		return nil, errors.ErrInvalidToken.WithMessage("invalid claims type")
	}

	if j.store != nil {
		revoked, err := j.store.IsRevoked(ctx, tokenString)
		if err != nil {
			return nil, errors.ErrInternal.WithCause(err).WithMessage("failed to check token revocation")
		}
		if revoked {
			return nil, errors.ErrTokenRevoked
		}
	}

	out := &auth.Claims{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
		ID:      claims.ID,
		Extra:   claims.Extra,
	}
	// Time claims are optional in a parsed token; Sign always sets them,
	// but Verify must not assume it was the signer.
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.NotBefore != nil {
		out.NotBefore = claims.NotBefore.Unix()
	}
	return out, nil
}

// Revoke invalidates a token until its natural expiration.
// Without a configured store this is a no-op.
func (j *JWT) Revoke(ctx context.Context, tokenString string) error {
	if j.store == nil {
		return nil
	}

	claims, err := j.Verify(ctx, tokenString)
	if err != nil {
		// Already invalid; nothing to revoke.
		return nil
	}

	remaining := time.Until(time.Unix(claims.ExpiresAt, 0))
	if remaining <= 0 {
		return nil
	}
	return j.store.Revoke(ctx, tokenString, remaining)
}

// generateTokenID creates a random token identifier.
func generateTokenID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
