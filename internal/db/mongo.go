package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/arzan03/ArtistryCamp/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names inside the application database.
const (
	UsersCollection     = "users"
	ClassesCollection   = "classes"
	SelectionCollection = "selected"
)

// Mongo bundles the client with the application database.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// ConnectMongoDB builds the client and pings the deployment. A failed ping is
// logged and tolerated: routes stay registered and fail per request until the
// cluster becomes reachable. Only an unusable URI is returned as an error.
func ConnectMongoDB(ctx context.Context, uri, dbName string, timeout time.Duration) (*Mongo, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetTimeout(timeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	m := &Mongo{Client: client, Database: client.Database(dbName)}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := m.Ping(pingCtx); err != nil {
		slog.Error("mongo ping failed", slog.String("error", err.Error()))
	} else {
		slog.Info("pinged deployment, connected to MongoDB", slog.String("database", dbName))
	}

	return m, nil
}

// Ping runs the admin ping command.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Disconnect closes the client's connection pool.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// Users returns the store backed by the users collection.
func (m *Mongo) Users() *UserRepository {
	return &UserRepository{coll: m.Database.Collection(UsersCollection)}
}

// Classes returns the store backed by the classes collection.
func (m *Mongo) Classes() *ClassRepository {
	return &ClassRepository{coll: m.Database.Collection(ClassesCollection)}
}

// Selections returns the store backed by the selected collection.
func (m *Mongo) Selections() *SelectionRepository {
	return &SelectionRepository{coll: m.Database.Collection(SelectionCollection)}
}

func insertResult(res *mongo.InsertOneResult) models.InsertResult {
	out := models.InsertResult{Acknowledged: true}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.InsertedID = id
	}
	return out
}

func updateResult(res *mongo.UpdateResult) models.UpdateResult {
	out := models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = &id
	}
	return out
}
