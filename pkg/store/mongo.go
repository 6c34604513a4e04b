package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/biolababs/serverless-trivia-game/pkg/config"
	"github.com/biolababs/serverless-trivia-game/pkg/progress"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoFinder is the subset of *mongo.Collection used by MongoStore
type MongoFinder interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
}

// MongoStore reads progression documents whose _id is the player name
type MongoStore struct {
	coll   MongoFinder
	client *mongo.Client
}

func NewMongoStore(coll MongoFinder, client *mongo.Client) *MongoStore {
	return &MongoStore{coll: coll, client: client}
}

// OpenMongo connects to MongoDB and binds the named collection
func OpenMongo(ctx context.Context, cfg config.MongoConfig, collection string) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	coll := client.Database(cfg.Database).Collection(collection)
	return NewMongoStore(coll, client), nil
}

func (s *MongoStore) Get(ctx context.Context, playerName string) (progress.Record, bool, error) {
	var rec progress.Record
	err := s.coll.FindOne(ctx, bson.M{"_id": playerName}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return progress.Record{}, false, nil
	}
	if err != nil {
		return progress.Record{}, false, progress.NewLookupError(playerName, err)
	}
	return rec, true, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
