// File: services/booking/interface.go
package booking

import (
	"context"

	"doctorsportal/models"
)

// Service is the booking side of the query façade: the conflict guard plus
// the ledger lookups the payment and listing flows need.
type Service interface {
	// CreateBooking admits a candidate into the ledger or rejects it. A
	// rejection is a *BookingError with code DUPLICATE_BOOKING or
	// INVALID_REFERENCE; the ledger is untouched on any rejection.
	CreateBooking(ctx context.Context, candidate models.Booking) (*models.BookingResult, error)
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}
