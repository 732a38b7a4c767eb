package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/arzan03/ArtistryCamp/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository stores users in the users collection.
type UserRepository struct {
	coll *mongo.Collection
}

// FindByEmail returns models.ErrNotFound when no user has the email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, models.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

// Insert adds the user, assigning an id when it has none.
func (r *UserRepository) Insert(ctx context.Context, user models.User) (models.InsertResult, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert user: %w", err)
	}
	return insertResult(res), nil
}

// UpsertProfile sets the profile fields of the user with the given email,
// creating the document when none exists. The role field is never written.
func (r *UserRepository) UpsertProfile(ctx context.Context, email string, profile models.Profile) (models.UpdateResult, error) {
	set := bson.M{"email": email}
	if profile.Name != "" {
		set["name"] = profile.Name
	}
	if profile.PhotoURL != "" {
		set["photoURL"] = profile.PhotoURL
	}
	opts := options.Update().SetUpsert(true)
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set}, opts)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("upsert user: %w", err)
	}
	return updateResult(res), nil
}

// SetRole overwrites the role of the user with the given id.
func (r *UserRepository) SetRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error) {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("set user role: %w", err)
	}
	return updateResult(res), nil
}

// List returns every user.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	return r.find(ctx, bson.M{})
}

// ListByRole returns the users holding role.
func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	return r.find(ctx, bson.M{"role": role})
}

func (r *UserRepository) find(ctx context.Context, filter bson.M) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
