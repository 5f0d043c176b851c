// Package cluster executes administrative operations against arbitrary
// user-supplied MongoDB clusters.
//
// Every operation dials a fresh connection, runs, and disconnects; the
// gateway never pools connections to clusters it does not own. Stable
// Server API v1 keeps behavior consistent across server versions.
package cluster

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kart-io/logger"

	"github.com/kart-io/mongogate/internal/model"
	"github.com/kart-io/mongogate/pkg/errors"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 200

	// allDocumentsCap bounds unpaginated dumps.
	allDocumentsCap = 5000
)

// Executor runs operations against remote clusters.
type Executor interface {
	ListDatabases(ctx context.Context, connectionString string) ([]string, error)
	ListCollections(ctx context.Context, connectionString, database string) ([]string, error)
	Documents(ctx context.Context, req *model.DocumentsRequest) (*model.DocumentPage, error)
	Search(ctx context.Context, req *model.SearchRequest) (*model.DocumentPage, error)
	AllDocuments(ctx context.Context, req *model.CollectionsRequest, collection string) ([]json.RawMessage, error)
	Insert(ctx context.Context, req *model.InsertDocumentRequest) (string, error)
}

type executor struct {
	connectTimeout time.Duration
}

// NewExecutor returns an Executor with the given dial timeout. A zero
// timeout falls back to 10 seconds.
func NewExecutor(connectTimeout time.Duration) Executor {
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}
	return &executor{connectTimeout: connectTimeout}
}

// withClient dials the cluster, runs fn, and always disconnects.
func (e *executor) withClient(ctx context.Context, connectionString string, fn func(ctx context.Context, client *mongo.Client) error) error {
	opts := options.Client().
		ApplyURI(connectionString).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(e.connectTimeout).
		SetServerSelectionTimeout(e.connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return errors.ErrClusterUnreachable.WithCause(err)
	}
	defer func() {
		if derr := client.Disconnect(context.Background()); derr != nil {
			logger.Warnw("集群连接断开失败", "error", derr)
		}
	}()

	if err := client.Ping(ctx, nil); err != nil {
		return errors.ErrClusterUnreachable.WithCause(err)
	}
	return fn(ctx, client)
}

func (e *executor) ListDatabases(ctx context.Context, connectionString string) ([]string, error) {
	var names []string
	err := e.withClient(ctx, connectionString, func(ctx context.Context, client *mongo.Client) error {
		result, err := client.ListDatabaseNames(ctx, bson.M{})
		if err != nil {
			return errors.ErrClusterOperation.WithCause(err)
		}
		names = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (e *executor) ListCollections(ctx context.Context, connectionString, database string) ([]string, error) {
	var names []string
	err := e.withClient(ctx, connectionString, func(ctx context.Context, client *mongo.Client) error {
		result, err := client.Database(database).ListCollectionNames(ctx, bson.M{})
		if err != nil {
			return errors.ErrClusterOperation.WithCause(err)
		}
		names = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (e *executor) Documents(ctx context.Context, req *model.DocumentsRequest) (*model.DocumentPage, error) {
	page, limit := normalizePage(req.Page, req.Limit)
	return e.pagedFind(ctx, req.ConnectionString, req.Database, req.Collection, bson.M{}, page, limit)
}

func (e *executor) Search(ctx context.Context, req *model.SearchRequest) (*model.DocumentPage, error) {
	page, limit := normalizePage(req.Page, req.Limit)
	filter := buildSearchFilter(req.Field, req.Value)
	return e.pagedFind(ctx, req.ConnectionString, req.Database, req.Collection, filter, page, limit)
}

func (e *executor) pagedFind(ctx context.Context, connectionString, database, collection string, filter bson.M, page, limit int) (*model.DocumentPage, error) {
	result := &model.DocumentPage{Page: page, Limit: limit}
	err := e.withClient(ctx, connectionString, func(ctx context.Context, client *mongo.Client) error {
		coll := client.Database(database).Collection(collection)

		total, err := coll.CountDocuments(ctx, filter)
		if err != nil {
			return errors.ErrClusterOperation.WithCause(err)
		}

		opts := options.Find().
			SetSort(bson.D{{Key: "_id", Value: -1}}).
			SetSkip(int64((page - 1) * limit)).
			SetLimit(int64(limit))
		cursor, err := coll.Find(ctx, filter, opts)
		if err != nil {
			return errors.ErrClusterOperation.WithCause(err)
		}
		defer cursor.Close(ctx)

		docs, err := decodeAll(ctx, cursor)
		if err != nil {
			return err
		}
		result.Total = total
		result.Documents = docs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (e *executor) AllDocuments(ctx context.Context, req *model.CollectionsRequest, collection string) ([]json.RawMessage, error) {
	var docs []json.RawMessage
	err := e.withClient(ctx, req.ConnectionString, func(ctx context.Context, client *mongo.Client) error {
		coll := client.Database(req.Database).Collection(collection)

		opts := options.Find().
			SetSort(bson.D{{Key: "_id", Value: -1}}).
			SetLimit(allDocumentsCap)
		cursor, err := coll.Find(ctx, bson.M{}, opts)
		if err != nil {
			return errors.ErrClusterOperation.WithCause(err)
		}
		defer cursor.Close(ctx)

		docs, err = decodeAll(ctx, cursor)
		return err
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (e *executor) Insert(ctx context.Context, req *model.InsertDocumentRequest) (string, error) {
	var insertedID string
	err := e.withClient(ctx, req.ConnectionString, func(ctx context.Context, client *mongo.Client) error {
		coll := client.Database(req.Database).Collection(req.Collection)
		result, err := coll.InsertOne(ctx, req.Document)
		if err != nil {
			return errors.ErrClusterOperation.WithCause(err)
		}
		switch id := result.InsertedID.(type) {
		case primitive.ObjectID:
			insertedID = id.Hex()
		default:
			insertedID = formatInsertedID(id)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return insertedID, nil
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]json.RawMessage, error) {
	docs := make([]json.RawMessage, 0)
	for cursor.Next(ctx) {
		raw, err := bson.MarshalExtJSON(cursor.Current, false, false)
		if err != nil {
			return nil, errors.ErrClusterOperation.WithCause(err)
		}
		docs = append(docs, json.RawMessage(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.ErrClusterOperation.WithCause(err)
	}
	return docs, nil
}

// normalizePage clamps page and limit to sane bounds, defaulting to the
// first page of ten documents.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// buildSearchFilter coerces the search value: numbers and booleans match
// typed fields, anything else matches as a case-insensitive substring.
func buildSearchFilter(field, value string) bson.M {
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return bson.M{field: n}
	}
	if value == "true" || value == "false" {
		return bson.M{field: value == "true"}
	}
	return bson.M{field: primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}}
}

func formatInsertedID(id interface{}) string {
	raw, err := json.Marshal(id)
	if err != nil {
		return ""
	}
	return string(raw)
}
