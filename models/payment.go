package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is the record written after a successful charge. BookingID refers
// to the booking whose paid flag gets flipped.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	InvoiceID     string             `bson:"invoiceId" json:"invoiceId"`
	BookingID     string             `bson:"bookingId" json:"bookingId"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
}

// PaymentResult reports both writes of the payment flow: the inserted payment
// record and whether the booking was marked paid.
type PaymentResult struct {
	InsertedID     string `json:"insertedId"`
	BookingUpdated bool   `json:"bookingUpdated"`
}
