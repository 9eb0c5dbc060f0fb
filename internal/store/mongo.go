package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"insurance-portal-api/internal/config"
)

// Connect establishes the document store connection once at startup.
//
// Connection failure degrades to the Unavailable adapter instead of
// terminating the process: this is a fire-once check with no retries, and
// every later operation treats "unavailable" as "empty". The outcome is
// logged exactly once.
func Connect(cfg config.MongoConfig) Store {
	if cfg.URI == "" {
		logConnect(false, "no MONGO_URI configured")
		return Unavailable()
	}

	timeout := time.Duration(cfg.ConnectTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMonitor(otelmongo.NewMonitor())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logConnect(false, "connect: "+err.Error())
		return Unavailable()
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		logConnect(false, "ping: "+err.Error())
		return Unavailable()
	}

	logConnect(true, "")
	return &mongoStore{db: client.Database(cfg.Database)}
}

// mongoStore is the live adapter over a mongo database handle. The handle
// is safe for concurrent use; the adapter adds no state of its own.
type mongoStore struct {
	db *mongo.Database
}

var _ Store = (*mongoStore)(nil)

func (s *mongoStore) Available() bool { return true }

func (s *mongoStore) Insert(ctx context.Context, collection string, doc any) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

// FindAll reads the whole collection in natural (insertion) order.
func (s *mongoStore) FindAll(ctx context.Context, collection string) ([]bson.M, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	docs := make([]bson.M, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *mongoStore) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return s.db.Collection(collection).CountDocuments(ctx, filter)
}

func logConnect(connected bool, reason string) {
	entry := map[string]any{
		"ts":        time.Now().UTC().Format(time.RFC3339Nano),
		"level":     "info",
		"component": "store",
		"msg":       "store_connected",
	}
	if !connected {
		entry["msg"] = "store_unavailable"
		entry["reason"] = reason
	}
	if b, err := json.Marshal(entry); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
