package db

import (
	"context"
	"fmt"

	"github.com/arzan03/ArtistryCamp/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SelectionRepository stores class picks in the selected collection.
type SelectionRepository struct {
	coll *mongo.Collection
}

// Insert records a selection. Duplicates are kept.
func (r *SelectionRepository) Insert(ctx context.Context, sel models.Selection) (models.InsertResult, error) {
	if sel.ID.IsZero() {
		sel.ID = primitive.NewObjectID()
	}
	res, err := r.coll.InsertOne(ctx, sel)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert selection: %w", err)
	}
	return insertResult(res), nil
}

// ListByEmail returns the selections made by the student email.
func (r *SelectionRepository) ListByEmail(ctx context.Context, email string) ([]models.Selection, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("find selections: %w", err)
	}
	defer cursor.Close(ctx)

	selections := make([]models.Selection, 0)
	if err := cursor.All(ctx, &selections); err != nil {
		return nil, fmt.Errorf("decode selections: %w", err)
	}
	return selections, nil
}
