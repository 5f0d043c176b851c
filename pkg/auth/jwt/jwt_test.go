package jwt

import (
	"context"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/mongogate/pkg/auth"
	"github.com/kart-io/mongogate/pkg/errors"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newTestJWT(t *testing.T, opts ...Option) *JWT {
	t.Helper()
	j, err := New(append([]Option{WithKey(testKey)}, opts...)...)
	require.NoError(t, err)
	return j
}

func TestNew_Validation(t *testing.T) {
	// 密钥过短被拒绝
	_, err := New(WithKey("short"))
	assert.Error(t, err)

	o := NewOptions()
	o.Key = testKey
	o.SigningMethod = "RS256"
	_, err = New(WithOptions(o))
	assert.Error(t, err)
}

func TestSignAndVerify(t *testing.T) {
	j := newTestJWT(t)
	ctx := context.Background()

	token, err := j.Sign(ctx, "user-123", auth.WithExtra(map[string]interface{}{
		"username": "alice",
	}))
	require.NoError(t, err)
	assert.NotEmpty(t, token.GetAccessToken())
	assert.Equal(t, "Bearer", token.GetTokenType())
	assert.Greater(t, token.GetExpiresAt(), time.Now().Unix())

	claims, err := j.Verify(ctx, token.GetAccessToken())
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "mongogate", claims.Issuer)
	assert.Equal(t, "alice", claims.ExtraString("username"))
	assert.NotEmpty(t, claims.ID)
}

func TestVerify_Invalid(t *testing.T) {
	j := newTestJWT(t)
	ctx := context.Background()

	_, err := j.Verify(ctx, "")
	assert.True(t, errors.IsCode(err, errors.ErrInvalidToken.Code), "unexpected error: %v", err)

	_, err = j.Verify(ctx, "not.a.token")
	assert.True(t, errors.IsCode(err, errors.ErrInvalidToken.Code), "unexpected error: %v", err)

	// 不同密钥签发的令牌验证失败
	other, err := New(WithKey("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)
	token, err := other.Sign(ctx, "user-123")
	require.NoError(t, err)
	_, err = j.Verify(ctx, token.GetAccessToken())
	assert.True(t, errors.IsCode(err, errors.ErrInvalidToken.Code), "unexpected error: %v", err)
}

func TestVerify_Expired(t *testing.T) {
	j := newTestJWT(t)
	ctx := context.Background()

	token, err := j.Sign(ctx, "user-123", auth.WithExpiresAt(time.Now().Add(-time.Minute)))
	require.NoError(t, err)

	_, err = j.Verify(ctx, token.GetAccessToken())
	assert.True(t, errors.IsCode(err, errors.ErrInvalidToken.Code), "unexpected error: %v", err)
}

func TestVerify_MissingTimeClaims(t *testing.T) {
	j := newTestJWT(t)
	ctx := context.Background()

	// 手工构造仅含 subject 的令牌：时间声明缺失时验证不得崩溃
	raw := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, &customClaims{
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: "user-123"},
	})
	tokenString, err := raw.SignedString([]byte(testKey))
	require.NoError(t, err)

	claims, err := j.Verify(ctx, tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Zero(t, claims.ExpiresAt)
	assert.Zero(t, claims.IssuedAt)
	assert.Zero(t, claims.NotBefore)
}

func TestRevoke(t *testing.T) {
	store := NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	j := newTestJWT(t, WithStore(store))
	ctx := context.Background()

	token, err := j.Sign(ctx, "user-123")
	require.NoError(t, err)

	_, err = j.Verify(ctx, token.GetAccessToken())
	require.NoError(t, err)

	require.NoError(t, j.Revoke(ctx, token.GetAccessToken()))
	_, err = j.Verify(ctx, token.GetAccessToken())
	assert.True(t, errors.IsCode(err, errors.ErrTokenRevoked.Code), "unexpected error: %v", err)

	// 已失效令牌的吊销是幂等的
	assert.NoError(t, j.Revoke(ctx, token.GetAccessToken()))
	assert.NoError(t, j.Revoke(ctx, "garbage"))
}

func TestRevoke_WithoutStore(t *testing.T) {
	j := newTestJWT(t)
	ctx := context.Background()

	token, err := j.Sign(ctx, "user-123")
	require.NoError(t, err)

	// 未配置存储时吊销为空操作，令牌仍然有效
	require.NoError(t, j.Revoke(ctx, token.GetAccessToken()))
	_, err = j.Verify(ctx, token.GetAccessToken())
	assert.NoError(t, err)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(WithCleanupInterval(10 * time.Millisecond))
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "tok-1", time.Hour))
	revoked, err := store.IsRevoked(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "tok-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	// 过期条目被后台清理
	require.NoError(t, store.Revoke(ctx, "tok-3", time.Millisecond))
	assert.Eventually(t, func() bool {
		revoked, err := store.IsRevoked(ctx, "tok-3")
		return err == nil && !revoked
	}, time.Second, 20*time.Millisecond)
}
