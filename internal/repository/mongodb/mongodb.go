// Package mongodb implements the domain repositories over a MongoDB
// deployment. Documents are normalized to the canonical domain structs at
// every read/write boundary, so callers never see driver identifier types.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names follow the deployed database layout.
const (
	usersCollection     = "Users"
	taskListsCollection = "TaskList"
)

// DB wraps a connected Mongo client and exposes repository constructors.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the deployment at uri and verifies it with a ping.
func Connect(ctx context.Context, uri, database string) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &DB{client: client, db: client.Database(database)}, nil
}

// Users returns the user repository.
func (d *DB) Users() *UserRepository {
	return &UserRepository{col: d.db.Collection(usersCollection)}
}

// TaskLists returns the task-list repository.
func (d *DB) TaskLists() *TaskListRepository {
	return &TaskListRepository{col: d.db.Collection(taskListsCollection)}
}

// Ping verifies the deployment is still reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
