package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Selection links a student (by email) to a class they picked. The class
// fields are a snapshot taken by the client at selection time.
type Selection struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email          string             `bson:"email" json:"email" validate:"required"`
	ClassID        string             `bson:"classId" json:"classId" validate:"required"`
	ClassName      string             `bson:"className,omitempty" json:"className,omitempty"`
	ClassImage     string             `bson:"classImage,omitempty" json:"classImage,omitempty"`
	InstructorName string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	Price          float64            `bson:"price,omitempty" json:"price,omitempty"`
}
