package biz

import (
	"context"

	"github.com/kart-io/mongogate/internal/gateway/store"
	"github.com/kart-io/mongogate/internal/model"
	"github.com/kart-io/mongogate/pkg/errors"
)

// UserBiz exposes account queries.
type UserBiz interface {
	Get(ctx context.Context, userID string) (*model.Profile, error)
}

type userBiz struct {
	ds store.Factory
}

// NewUserBiz returns a UserBiz over the given stores.
func NewUserBiz(ds store.Factory) UserBiz {
	return &userBiz{ds: ds}
}

var _ UserBiz = (*userBiz)(nil)

func (b *userBiz) Get(ctx context.Context, userID string) (*model.Profile, error) {
	if userID == "" {
		return nil, errors.ErrUnauthorized
	}
	user, err := b.ds.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}
