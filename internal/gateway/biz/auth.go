package biz

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/kart-io/logger"

	"github.com/kart-io/mongogate/internal/gateway/store"
	"github.com/kart-io/mongogate/internal/model"
	"github.com/kart-io/mongogate/pkg/auth"
	"github.com/kart-io/mongogate/pkg/errors"
)

// AuthBiz handles registration, login and logout.
type AuthBiz interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.Profile, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type authBiz struct {
	ds    store.Factory
	authn auth.Authenticator
}

// NewAuthBiz returns an AuthBiz over the given stores and authenticator.
func NewAuthBiz(ds store.Factory, authn auth.Authenticator) AuthBiz {
	return &authBiz{ds: ds, authn: authn}
}

var _ AuthBiz = (*authBiz)(nil)

func (b *authBiz) Register(ctx context.Context, req *model.RegisterRequest) (*model.Profile, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.ErrInternal.WithCause(err)
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	// The unique username/email indexes decide conflicts, not a pre-check.
	if err := b.ds.Users().Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Infow("用户注册成功", "user_id", user.ID.Hex(), "username", username)
	return user.Profile(), nil
}

func (b *authBiz) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := b.ds.Users().GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.IsCode(err, errors.ErrUserNotFound.Code) {
			// Same error as a bad password, to avoid account probing.
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	token, err := b.authn.Sign(ctx, user.ID.Hex(), auth.WithExtra(map[string]interface{}{
		"username": user.Username,
		"email":    user.Email,
	}))
	if err != nil {
		return nil, errors.FromError(err)
	}

	logger.Infow("用户登录成功", "user_id", user.ID.Hex(), "username", user.Username)
	return &model.LoginResponse{
		Token:     token.GetAccessToken(),
		TokenType: token.GetTokenType(),
		ExpiresAt: token.GetExpiresAt(),
		User:      user.Profile(),
	}, nil
}

func (b *authBiz) Logout(ctx context.Context, token string) error {
	if token == "" {
		return errors.ErrUnauthorized
	}
	return b.authn.Revoke(ctx, token)
}
