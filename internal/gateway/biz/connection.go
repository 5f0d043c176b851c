package biz

import (
	"context"
	"strings"

	"github.com/kart-io/logger"

	"github.com/kart-io/mongogate/internal/gateway/store"
	"github.com/kart-io/mongogate/internal/model"
	"github.com/kart-io/mongogate/pkg/errors"
)

// ConnectionBiz manages the per-user saved-connection registry.
type ConnectionBiz interface {
	// Register saves a connection string for the owner. Duplicate strings
	// for the same owner are rejected; different owners may save the same
	// string independently.
	Register(ctx context.Context, ownerID string, req *model.SaveConnectionRequest) (*model.SavedConnection, error)

	// List returns all of the owner's saved connections, newest first.
	List(ctx context.Context, ownerID string) ([]*model.SavedConnection, error)

	// Remove deletes the owner's record for the given connection string.
	Remove(ctx context.Context, ownerID, connectionString string) error
}

type connectionBiz struct {
	ds store.Factory
}

// NewConnectionBiz returns a ConnectionBiz over the given stores.
func NewConnectionBiz(ds store.Factory) ConnectionBiz {
	return &connectionBiz{ds: ds}
}

var _ ConnectionBiz = (*connectionBiz)(nil)

func (b *connectionBiz) Register(ctx context.Context, ownerID string, req *model.SaveConnectionRequest) (*model.SavedConnection, error) {
	if ownerID == "" {
		return nil, errors.ErrUnauthorized
	}
	connStr, err := normalizeConnectionString(req.ConnectionString)
	if err != nil {
		return nil, err
	}

	// Fast path: report the conflict without an insert attempt. The unique
	// index remains the authority under concurrency.
	if _, err := b.ds.Connections().GetByConnectionString(ctx, ownerID, connStr); err == nil {
		return nil, errors.ErrConnectionExists
	} else if !errors.IsCode(err, errors.ErrConnectionNotFound.Code) {
		return nil, err
	}

	conn := &model.SavedConnection{
		OwnerID:          ownerID,
		Label:            strings.TrimSpace(req.Label),
		ConnectionString: connStr,
	}
	if err := b.ds.Connections().Create(ctx, conn); err != nil {
		return nil, err
	}

	// Connection strings carry credentials and are never logged.
	logger.Infow("保存连接成功", "owner_id", ownerID, "connection_id", conn.ID.Hex())
	return conn, nil
}

func (b *connectionBiz) List(ctx context.Context, ownerID string) ([]*model.SavedConnection, error) {
	if ownerID == "" {
		return nil, errors.ErrUnauthorized
	}
	return b.ds.Connections().ListByOwner(ctx, ownerID)
}

func (b *connectionBiz) Remove(ctx context.Context, ownerID, connectionString string) error {
	if ownerID == "" {
		return errors.ErrUnauthorized
	}
	connStr, err := normalizeConnectionString(connectionString)
	if err != nil {
		return err
	}

	deleted, err := b.ds.Connections().Delete(ctx, ownerID, connStr)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errors.ErrConnectionNotFound
	}

	logger.Infow("删除连接成功", "owner_id", ownerID)
	return nil
}

// normalizeConnectionString trims surrounding whitespace and requires the
// result to be non-empty. Strings differing only in surrounding whitespace
// are the same registry entry. The registry stores the value verbatim
// beyond that: whether it is reachable or even a parseable URI is the
// cluster executor's concern at time of use.
func normalizeConnectionString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.ErrInvalidParam.WithMessage("connection string is required")
	}
	return s, nil
}
