package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TreatmentOption is a catalog entry: a named service with a price and the
// full list of bookable slot labels. Owned by the admin side; read-only here.
type TreatmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"`
}

// TreatmentAvailability is a catalog entry with the slots already booked for
// a given date removed. Slot order follows the catalog.
type TreatmentAvailability struct {
	Name  string   `bson:"name" json:"name"`
	Price float64  `bson:"price" json:"price"`
	Slots []string `bson:"slots" json:"slots"`
}

// TreatmentName is the projection used by the specialty listing.
type TreatmentName struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
