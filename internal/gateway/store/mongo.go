package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kart-io/mongogate/pkg/mongodb"
)

const (
	collUsers       = "users"
	collConnections = "saved_connections"
)

type datastore struct {
	client *mongodb.Client
}

var _ Factory = (*datastore)(nil)

// NewMongoStore builds a Factory over the given MongoDB client and
// creates the indexes the registry invariants depend on.
func NewMongoStore(ctx context.Context, client *mongodb.Client) (Factory, error) {
	ds := &datastore{client: client}
	if err := ds.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return ds, nil
}

func (ds *datastore) Users() UserStore {
	return &userStore{coll: ds.client.Collection(collUsers)}
}

func (ds *datastore) Connections() ConnectionStore {
	return &connectionStore{coll: ds.client.Collection(collConnections)}
}

func (ds *datastore) Close(_ context.Context) error {
	return ds.client.Close()
}

// ensureIndexes creates the unique indexes at startup. The compound index
// on (owner_id, connection_string) is the authoritative duplicate check:
// the pre-save lookup in the service layer is only a fast path, the index
// is what closes the check-then-act race.
func (ds *datastore) ensureIndexes(ctx context.Context) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := ds.client.Collection(collUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}

	connIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "owner_id", Value: 1},
				{Key: "connection_string", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := ds.client.Collection(collConnections).Indexes().CreateMany(ctx, connIndexes); err != nil {
		return fmt.Errorf("create connection indexes: %w", err)
	}
	return nil
}
