package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InsertResult mirrors the acknowledgement the document store hands back for
// a single insert.
type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

// UpdateResult mirrors the acknowledgement of a single-document update.
// MatchedCount of zero means the filter hit nothing.
type UpdateResult struct {
	Acknowledged  bool                `json:"acknowledged"`
	MatchedCount  int64               `json:"matchedCount"`
	ModifiedCount int64               `json:"modifiedCount"`
	UpsertedCount int64               `json:"upsertedCount"`
	UpsertedID    *primitive.ObjectID `json:"upsertedId,omitempty"`
}
