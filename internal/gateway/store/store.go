// Package store provides persistence for gateway accounts and the
// saved-connection registry.
package store

import (
	"context"

	"github.com/kart-io/mongogate/internal/model"
)

// Factory bundles the gateway stores.
type Factory interface {
	Users() UserStore
	Connections() ConnectionStore
	Close(ctx context.Context) error
}

// UserStore manages gateway accounts.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// ConnectionStore manages the saved-connection registry.
//
// Every operation is scoped by owner ID; a record is never visible to or
// deletable by anyone but its owner. Create relies on the unique compound
// index on (owner_id, connection_string), so concurrent saves of the same
// string by the same owner yield exactly one success.
type ConnectionStore interface {
	Create(ctx context.Context, conn *model.SavedConnection) error
	GetByConnectionString(ctx context.Context, ownerID, connectionString string) (*model.SavedConnection, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*model.SavedConnection, error)
	Delete(ctx context.Context, ownerID, connectionString string) (int64, error)
}
