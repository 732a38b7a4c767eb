package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user can hold. An empty role means the user registered but was
// never promoted.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email" validate:"required"`
	PhotoURL string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
}

// Profile holds the fields a user may sync about themselves. Role is
// deliberately absent: it only changes through an admin assignment.
type Profile struct {
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL string `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
}
