package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class approval states. A freshly submitted class carries no status and is
// treated as pending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassName       string             `bson:"className" json:"className" validate:"required"`
	ClassImage      string             `bson:"classImage,omitempty" json:"classImage,omitempty"`
	InstructorName  string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	InstructorEmail string             `bson:"instructorEmail" json:"instructorEmail" validate:"required"`
	AvailableSeats  int                `bson:"availableSeats" json:"availableSeats"`
	Price           float64            `bson:"price" json:"price"`
	Status          string             `bson:"status,omitempty" json:"status,omitempty"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// EffectiveStatus reports the workflow state, mapping a missing status to
// pending.
func (c Class) EffectiveStatus() string {
	if c.Status == "" {
		return StatusPending
	}
	return c.Status
}
