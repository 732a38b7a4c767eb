package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts a path parameter into an ObjectID, rejecting anything that
// is not 24 hex characters.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, NewBadRequest("invalid id format")
	}
	return id, nil
}
