package db

import (
	"context"
	"fmt"

	"github.com/arzan03/ArtistryCamp/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ClassRepository stores submitted classes in the classes collection.
type ClassRepository struct {
	coll *mongo.Collection
}

// Insert adds the class, assigning an id when it has none.
func (r *ClassRepository) Insert(ctx context.Context, class models.Class) (models.InsertResult, error) {
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
	}
	res, err := r.coll.InsertOne(ctx, class)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert class: %w", err)
	}
	return insertResult(res), nil
}

// List returns every class regardless of status.
func (r *ClassRepository) List(ctx context.Context) ([]models.Class, error) {
	return r.find(ctx, bson.M{})
}

// ListByStatus matches the stored status string exactly. Pending classes have
// no status field and are not returned for "pending".
func (r *ClassRepository) ListByStatus(ctx context.Context, status string) ([]models.Class, error) {
	return r.find(ctx, bson.M{"status": status})
}

// ListByInstructor returns the classes submitted under the instructor email.
func (r *ClassRepository) ListByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	return r.find(ctx, bson.M{"instructorEmail": email})
}

// SetStatus overwrites the status of the class with the given id.
func (r *ClassRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error) {
	return r.set(ctx, id, "status", status)
}

// SetFeedback overwrites the admin feedback of the class with the given id.
func (r *ClassRepository) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (models.UpdateResult, error) {
	return r.set(ctx, id, "feedback", feedback)
}

func (r *ClassRepository) set(ctx context.Context, id primitive.ObjectID, field string, value string) (models.UpdateResult, error) {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update class %s: %w", field, err)
	}
	return updateResult(res), nil
}

func (r *ClassRepository) find(ctx context.Context, filter bson.M) ([]models.Class, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find classes: %w", err)
	}
	defer cursor.Close(ctx)

	classes := make([]models.Class, 0)
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("decode classes: %w", err)
	}
	return classes, nil
}
