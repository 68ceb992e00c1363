package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github-activity/internal/event/repository"
	"github-activity/pkg/log"
)

const (
	DefaultDatabase   = "webhook_db"
	DefaultCollection = "events"

	countersCollection = "counters"
)

// Options names where events are stored.
type Options struct {
	Database   string
	Collection string
}

type implRepository struct {
	client   *mongo.Client
	events   *mongo.Collection
	counters *mongo.Collection
	l        log.Logger
}

// New creates a MongoDB-backed Repository and ensures the seq index.
// The repository owns client and disconnects it on Close.
func New(ctx context.Context, client *mongo.Client, opt Options, l log.Logger) (repository.Repository, error) {
	if client == nil {
		return nil, fmt.Errorf("event/repository/mongo: client is required")
	}
	if opt.Database == "" {
		opt.Database = DefaultDatabase
	}
	if opt.Collection == "" {
		opt.Collection = DefaultCollection
	}

	db := client.Database(opt.Database)
	r := &implRepository{
		client:   client,
		events:   db.Collection(opt.Collection),
		counters: db.Collection(countersCollection),
		l:        l,
	}

	if _, err := r.events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "seq", Value: -1}},
	}); err != nil {
		return nil, fmt.Errorf("event/repository/mongo: create seq index: %w", err)
	}
	return r, nil
}

// Close disconnects the client.
func (r *implRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/mongo.%s", method)
}
