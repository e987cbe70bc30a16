// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"doctorsportal/database"
	"doctorsportal/models"
)

// ErrDuplicateBooking is returned by Insert when the unique index on
// (email, appointmentDate, treatment) rejects the document.
var ErrDuplicateBooking = errors.New("duplicate booking")

// ErrNotFound is returned when a booking lookup by id misses.
var ErrNotFound = mongo.ErrNoDocuments

// BookingRepository is the booking ledger: append-only from this core's point
// of view, except for the paid flip driven by the payment flow.
type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindConflicts(ctx context.Context, email, date, treatment string) ([]models.Booking, error)
	SetPaid(ctx context.Context, id, transactionID string) (bool, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository over the bookings
// collection and ensures its indexes.
func NewMongoBookingRepo() BookingRepository {
	repo := &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
