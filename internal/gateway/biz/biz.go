// Package biz implements the business logic of the gateway.
package biz

import (
	"github.com/kart-io/mongogate/internal/gateway/store"
	"github.com/kart-io/mongogate/pkg/auth"
)

// Biz bundles the gateway business services.
type Biz struct {
	Auth        AuthBiz
	Users       UserBiz
	Connections ConnectionBiz
}

// New builds the business layer over the given stores and authenticator.
func New(ds store.Factory, authn auth.Authenticator) *Biz {
	return &Biz{
		Auth:        NewAuthBiz(ds, authn),
		Users:       NewUserBiz(ds),
		Connections: NewConnectionBiz(ds),
	}
}
