package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a roster entry managed by admins. Specialty must name a
// TreatmentOption; this is advisory, not enforced.
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Specialty string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Image     string             `bson:"img,omitempty" json:"img,omitempty"`
}
