package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a portal account, keyed by email. Role is either empty or "admin".
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

const RoleAdmin = "admin"
