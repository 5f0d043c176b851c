package store

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kart-io/mongogate/internal/model"
	"github.com/kart-io/mongogate/pkg/errors"
)

type connectionStore struct {
	coll *mongo.Collection
}

var _ ConnectionStore = (*connectionStore)(nil)

// Create inserts a saved connection. A duplicate-key error from the
// (owner_id, connection_string) index maps to ErrConnectionExists, so
// concurrent identical saves produce exactly one success.
func (s *connectionStore) Create(ctx context.Context, conn *model.SavedConnection) error {
	conn.CreatedAt = time.Now()

	result, err := s.coll.InsertOne(ctx, conn)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.ErrConnectionExists
		}
		return errors.ErrDatabase.WithCause(err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		conn.ID = oid
	}
	return nil
}

func (s *connectionStore) GetByConnectionString(ctx context.Context, ownerID, connectionString string) (*model.SavedConnection, error) {
	filter := bson.M{"owner_id": ownerID, "connection_string": connectionString}

	var conn model.SavedConnection
	if err := s.coll.FindOne(ctx, filter).Decode(&conn); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrConnectionNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return &conn, nil
}

// ListByOwner returns the owner's saved connections, newest first.
func (s *connectionStore) ListByOwner(ctx context.Context, ownerID string) ([]*model.SavedConnection, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	defer cursor.Close(ctx)

	conns := make([]*model.SavedConnection, 0)
	if err := cursor.All(ctx, &conns); err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return conns, nil
}

// Delete removes the owner's record for the given connection string and
// reports how many documents matched. The filter always carries the owner
// ID, so one user can never delete another's record.
func (s *connectionStore) Delete(ctx context.Context, ownerID, connectionString string) (int64, error) {
	filter := bson.M{"owner_id": ownerID, "connection_string": connectionString}

	result, err := s.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, errors.ErrDatabase.WithCause(err)
	}
	return result.DeletedCount, nil
}
