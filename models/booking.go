package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is one committed reservation: one slot of one treatment, for one
// patient, on one date. Treatment references TreatmentOption.Name; the date is
// stored as an opaque string key. Paid and TransactionID are written later by
// the payment flow.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment       string             `bson:"treatment" json:"treatment"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	Slot            string             `bson:"slot" json:"slot"`
	Email           string             `bson:"email" json:"email"`
	Patient         string             `bson:"patient,omitempty" json:"patient,omitempty"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	Paid            bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// BookingResult is the outcome of a booking attempt.
type BookingResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}
